package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/leon37/GolfFortune/internal/model"
)

// csvHeaders 表头顺序即导出列顺序
var csvHeaders = []string{
	"이름", "휴대폰번호", "생년월일", "출생시간", "성별", "핸디캡",
	"방문CC", "아이언", "드라이버", "웨지", "퍼터", "볼",
	"사주요약", "오행", "성격", "골프스타일", "행운요소", "약점",
	"운세제목", "행운클럽", "행운볼", "행운홀", "행운아이템", "행운TPO",
}

// FileStore 每条记录落一个 JSON 文件和一个 CSV 文件
type FileStore struct {
	dir string
	now func() time.Time
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir, now: time.Now}
}

var unsafeName = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
	"\"", "_", "<", "_", ">", "_", "|", "_", "\n", "_", "\r", "_",
)

// baseName 生成 "<时间戳>_<姓名>"，时间戳里的 ':' 和 '.' 换成 '-'
func baseName(at time.Time, name string) string {
	ts := at.UTC().Format("2006-01-02T15:04:05.000Z")
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	name = strings.TrimSpace(unsafeName.Replace(name))
	if name == "" || name == "." || name == ".." {
		name = "anonymous"
	}
	return ts + "_" + name
}

func (s *FileStore) Save(_ context.Context, entry *model.FortuneEntry) (model.ExportInfo, error) {
	// 1. 确保目录存在
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return model.ExportInfo{}, fmt.Errorf("create data dir: %w", err)
	}

	exportedAt := s.now()
	base := baseName(exportedAt, entry.UserInfo.Name)
	jsonPath := filepath.Join(s.dir, base+".json")
	if _, err := os.Stat(jsonPath); err == nil {
		// 同一毫秒同名，加上记录 ID 区分
		base += "_" + shortID(entry.ID)
		jsonPath = filepath.Join(s.dir, base+".json")
	}
	csvPath := filepath.Join(s.dir, base+".csv")

	// 2. 写 JSON
	stored := *entry
	stored.ExportInfo = model.ExportInfo{
		Success:      true,
		RecordID:     entry.ID,
		JSONPath:     jsonPath,
		ExportFormat: "JSON",
		ExportedAt:   exportedAt,
	}
	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return model.ExportInfo{}, fmt.Errorf("marshal fortune entry: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return model.ExportInfo{}, fmt.Errorf("write json: %w", err)
	}
	slog.Info("Fortune saved", "path", jsonPath)

	// 3. 写 CSV
	if err := os.WriteFile(csvPath, []byte(csvRecord(entry)), 0o644); err != nil {
		return model.ExportInfo{}, fmt.Errorf("write csv: %w", err)
	}

	return model.ExportInfo{
		Success:      true,
		RecordID:     entry.ID,
		JSONPath:     jsonPath,
		CSVPath:      csvPath,
		ExportFormat: "JSON",
		ExportedAt:   exportedAt,
	}, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return id
}

// csvRecord 表头一行加数据一行，数据全部加双引号
func csvRecord(e *model.FortuneEntry) string {
	u, a, f := e.UserInfo, e.Analysis, e.Fortune
	handicap := ""
	if h, ok := u.HandicapValue(); ok {
		handicap = strconv.Itoa(h)
	}
	values := []string{
		u.Name, u.PhoneNumber, u.BirthDate, u.BirthTime, u.Gender, handicap,
		u.CountryClub, u.IronBrand, u.DriverBrand, u.WedgeBrand, u.PutterBrand, u.BallBrand,
		a.SajuSummary, string(a.Element), a.Personality, a.GolfStyle,
		strings.Join(a.LuckyColors, ", "), strings.Join(a.Weaknesses, ", "),
		f.Title, f.LuckyClub, f.LuckyBall, f.LuckyHole, f.LuckyItem, f.LuckyTPO,
	}

	var b strings.Builder
	b.WriteString(strings.Join(csvHeaders, ","))
	b.WriteByte('\n')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(v, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
	return b.String()
}

// List 按文件名倒序 (即时间倒序) 读取 JSON 记录
func (s *FileStore) List(ctx context.Context, filter ListFilter) ([]model.FortuneEntry, int64, error) {
	filter = filter.Normalize()

	dirEntries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.FortuneEntry{}, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read data dir: %w", err)
	}

	var names []string
	for _, d := range dirEntries {
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".json") {
			names = append(names, d.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	var matched []model.FortuneEntry
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return nil, 0, fmt.Errorf("read %s: %w", name, err)
		}
		var entry model.FortuneEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			slog.Warn("Skip unreadable fortune file", "file", name, "err", err)
			continue
		}
		if filter.Name != "" && !strings.Contains(entry.UserInfo.Name, filter.Name) {
			continue
		}
		matched = append(matched, entry)
	}

	total := int64(len(matched))
	from := filter.offset()
	if from >= len(matched) {
		return []model.FortuneEntry{}, total, nil
	}
	to := min(from+filter.PageSize, len(matched))
	return matched[from:to], total, nil
}
