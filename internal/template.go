package internal

const cTemplate = `
{{define "declarations" -}}
/* all sprite sheets */
enum SpriteSheetId {
{{- range .Sheets}}
    {{.ID}},
{{- end}}
    SpriteSheet_COUNT
};

/* sprite sheet struct */
struct SpriteSheet {
    SDL_Texture *texture;
    i32 w, h;
};

/* tag mapped to animation */
enum AnimationId {
{{- range .AnimIDs}}
    {{.}},
{{- end}}
    Anim_COUNT
};

/* struct for animations */
struct Animation {
    SDL_Rect rect;
    enum SpriteSheetId sheet;
    u32 dt;
    u32 index;
    u8 count;
};
{{- end}}

{{define "table" -}}
struct Animation SPRITES[Anim_COUNT] = {
{{- range $i, $f := .Frames}}{{if $i}},{{end}}
    { .rect={ .x={{$f.Rect.X}}, .y={{$f.Rect.Y}}, .w={{$f.Rect.W}}, .h={{$f.Rect.H}} }, .dt={{$f.Duration}}, .sheet={{$f.Sheet}}, .index={{$f.Index}}, .count={{$f.Count}} }
{{- end}}
};
{{- end}}

{{define "header" -}}
{{template "declarations" .}}

/* animations list */
{{if .Static}}static {{template "table" .}}{{else}}extern struct Animation SPRITES[Anim_COUNT];{{end}}
{{- range guards .CloseGuards}}

#endif
{{- end}}
{{- end}}

{{define "source" -}}
/* generated by sheetgen - DO NOT EDIT */
#include "{{.Include}}"

{{template "table" .}}
{{- end}}
`

const goTemplate = `
{{define "go" -}}
// Code generated by sheetgen. DO NOT EDIT.

package {{.Package}}

import "image"

type SpriteSheetID int

const (
{{- range $i, $s := .Sheets}}
	{{$s.ID}}{{if not $i}} SpriteSheetID = iota{{end}}
{{- end}}
	SpriteSheetCount
)

type SpriteSheet struct {
	Image string
	W, H  int
}

var SpriteSheets = [SpriteSheetCount]SpriteSheet{
{{- range .Sheets}}
	{Image: {{printf "%q" .Image}}, W: {{.Width}}, H: {{.Height}}},
{{- end}}
}

type AnimationID int

const (
{{- range $i, $id := .AnimIDs}}
	{{$id}}{{if not $i}} AnimationID = iota{{end}}
{{- end}}
	AnimationCount
)

// Animation is one frame of a tagged animation; Count is the length of the
// tag it belongs to.
type Animation struct {
	Rect  image.Rectangle
	Sheet SpriteSheetID
	DT    uint32
	Index uint32
	Count uint8
}

var Sprites = [AnimationCount]Animation{
{{- range .Frames}}
	{Rect: image.Rect({{.Rect.X}}, {{.Rect.Y}}, {{add .Rect.X .Rect.W}}, {{add .Rect.Y .Rect.H}}), Sheet: {{.Sheet}}, DT: {{.Duration}}, Index: {{.Index}}, Count: {{.Count}}},
{{- end}}
}
{{- end}}
`
