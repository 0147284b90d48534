package model

// Prompt 是发给生成模型的完整指令
// 只接受单个 prompt 的后端通过 system 通道接收 System 部分
type Prompt struct {
	System string
	User   string
}
