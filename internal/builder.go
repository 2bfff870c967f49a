package internal

import "fmt"

// Artifact is the merged output of all descriptors, in emission order.
type Artifact struct {
	Sheets  []*SheetRecord
	AnimIDs []string
	Frames  []Frame
}

func (a *Artifact) SheetIDs() []string {
	ids := make([]string, 0, len(a.Sheets))
	for _, s := range a.Sheets {
		ids = append(ids, s.ID)
	}
	return ids
}

type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Build(records []*SheetRecord) (*Artifact, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no descriptors loaded", ErrMalformed)
	}

	// enum constants of both enumerations share one C namespace
	seen := make(map[string]string)
	claim := func(id, owner string) error {
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("%w: identifier %s from %s collides with %s", ErrMalformed, id, owner, prev)
		}
		seen[id] = owner
		return nil
	}

	a := &Artifact{}
	for _, r := range records {
		if len(r.AnimIDs) != len(r.Frames) {
			return nil, fmt.Errorf("%w: %s: %d identifiers for %d frames",
				ErrMalformed, r.Path, len(r.AnimIDs), len(r.Frames))
		}
		if err := claim(r.ID, r.Path); err != nil {
			return nil, err
		}
		for _, id := range r.AnimIDs {
			if err := claim(id, r.Path); err != nil {
				return nil, err
			}
		}

		a.Sheets = append(a.Sheets, r)
		a.AnimIDs = append(a.AnimIDs, r.AnimIDs...)
		a.Frames = append(a.Frames, r.Frames...)
	}

	if len(a.Frames) == 0 {
		return nil, fmt.Errorf("%w: no frame tags found", ErrMalformed)
	}
	return a, nil
}
