package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// maxTagFrames is the largest tag length the u8 count field can hold.
	maxTagFrames = 255
	// maxDuration is the largest duration the u32 dt field can hold.
	maxDuration = math.MaxUint32
	// maxCoord bounds rectangle fields to the int fields of SDL_Rect.
	maxCoord = math.MaxInt32
)

type FrameRect struct {
	X, Y, W, H int
}

type Frame struct {
	Rect     FrameRect
	Duration int
	Index    int
	Sheet    string
	Count    int
}

type Tag struct {
	Name string
	ID   string
	From int
	To   int
}

func (t Tag) Count() int {
	return t.To - t.From + 1
}

// SheetRecord is everything read from one descriptor. AnimIDs and Frames are
// parallel: AnimIDs[i] names Frames[i].
type SheetRecord struct {
	ID      string
	Path    string
	Image   string
	Width   int
	Height  int
	Tags    []Tag
	AnimIDs []string
	Frames  []Frame
}

type Loader struct {
	upper cases.Caser
}

func NewLoader() *Loader {
	return &Loader{
		upper: cases.Upper(language.Und),
	}
}

// CheckInputs reports the first path that does not exist.
func CheckInputs(paths []string) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %s: not a real descriptor file", ErrMissingInput, path)
		}
	}
	return nil
}

func (l *Loader) LoadAll(paths []string) ([]*SheetRecord, error) {
	records := make([]*SheetRecord, 0, len(paths))
	for _, path := range paths {
		record, err := l.Load(path)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (l *Loader) Load(path string) (*SheetRecord, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %v", path, err)
	}

	meta, items, err := decodeDescriptor(path, data)
	if err != nil {
		return nil, err
	}

	entries, err := toFrames(path, items)
	if err != nil {
		return nil, err
	}

	record := &SheetRecord{
		ID:     l.SheetID(path),
		Path:   path,
		Image:  meta.Image,
		Width:  meta.Size.W,
		Height: meta.Size.H,
	}
	if record.ID == "" {
		return nil, malformed(path, "cannot derive a sheet identifier")
	}

	for i, def := range *meta.FrameTags {
		tag, err := l.loadTag(path, record.ID, i, def)
		if err != nil {
			return nil, err
		}
		record.Tags = append(record.Tags, tag)

		for index := tag.From; index <= tag.To; index++ {
			if index >= len(entries) {
				return nil, malformed(path, "tag %q: frame index %d out of range (%d frames)",
					tag.Name, index, len(entries))
			}
			record.AnimIDs = append(record.AnimIDs, fmt.Sprintf("%s%d", tag.ID, index))
			record.Frames = append(record.Frames, Frame{
				Rect:     entries[index].Rect,
				Duration: entries[index].Duration,
				Index:    index,
				Sheet:    record.ID,
				Count:    tag.Count(),
			})
		}
	}

	return record, nil
}

func (l *Loader) loadTag(path, sheetID string, i int, def frameTag) (Tag, error) {
	if def.Name == nil || def.From == nil || def.To == nil {
		return Tag{}, malformed(path, "frameTags[%d]: name, from and to are required", i)
	}

	tag := Tag{
		Name: *def.Name,
		From: *def.From,
		To:   *def.To,
	}
	name := l.Identifier(tag.Name)
	if name == "" {
		return Tag{}, malformed(path, "frameTags[%d]: invalid name %q", i, tag.Name)
	}
	tag.ID = sheetID + "_" + name

	switch {
	case tag.From < 0:
		return Tag{}, malformed(path, "tag %q: negative from %d", tag.Name, tag.From)
	case tag.Count() < 1:
		return Tag{}, malformed(path, "tag %q: empty range [%d, %d]", tag.Name, tag.From, tag.To)
	case tag.Count() > maxTagFrames:
		return Tag{}, malformed(path, "tag %q: %d frames exceeds %d", tag.Name, tag.Count(), maxTagFrames)
	}
	return tag, nil
}

func toFrames(path string, items []frameEntry) ([]Frame, error) {
	frames := make([]Frame, 0, len(items))
	for i, entry := range items {
		frame, err := entry.toFrame()
		if err != nil {
			return nil, malformed(path, "frames[%d]: %v", i, err)
		}
		frame.Index = i
		frames = append(frames, frame)
	}
	return frames, nil
}

func (e frameEntry) toFrame() (Frame, error) {
	r := e.Frame
	if r == nil {
		return Frame{}, fmt.Errorf("missing frame")
	}
	if r.X == nil || r.Y == nil || r.W == nil || r.H == nil {
		return Frame{}, fmt.Errorf("frame needs x, y, w and h")
	}
	if e.Duration == nil {
		return Frame{}, fmt.Errorf("missing duration")
	}

	frame := Frame{
		Rect:     FrameRect{X: *r.X, Y: *r.Y, W: *r.W, H: *r.H},
		Duration: *e.Duration,
	}
	if frame.Rect.X < 0 || frame.Rect.Y < 0 || frame.Rect.W < 0 || frame.Rect.H < 0 {
		return Frame{}, fmt.Errorf("negative rectangle %+v", frame.Rect)
	}
	if int64(frame.Rect.X) > maxCoord || int64(frame.Rect.Y) > maxCoord ||
		int64(frame.Rect.W) > maxCoord || int64(frame.Rect.H) > maxCoord {
		return Frame{}, fmt.Errorf("rectangle %+v exceeds %d", frame.Rect, maxCoord)
	}
	if int64(frame.Duration) > maxDuration {
		return Frame{}, fmt.Errorf("duration %d exceeds %d", frame.Duration, uint64(maxDuration))
	}
	if frame.Duration < 0 {
		return Frame{}, fmt.Errorf("negative duration %d", frame.Duration)
	}
	return frame, nil
}

// Identifier uppercases name and folds it into a C identifier: every run of
// characters outside [A-Z0-9] becomes a single underscore.
func (l *Loader) Identifier(name string) string {
	upper := l.upper.String(name)

	var b strings.Builder
	pending := false
	for _, r := range upper {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}

	return b.String()
}

// SheetID derives the sheet identifier from the descriptor's base name. A
// leading digit gets an underscore prefix.
func (l *Loader) SheetID(path string) string {
	id := l.Identifier(SheetName(path))
	if id != "" && id[0] >= '0' && id[0] <= '9' {
		id = "_" + id
	}
	return id
}

// SheetName strips the directory and extension from a descriptor path.
func SheetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func malformed(path, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformed, path, fmt.Sprintf(format, args...))
}
