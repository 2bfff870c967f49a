package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const heroDescriptor = `{
  "frames": [
    { "filename": "hero 0.ase", "frame": { "x": 0, "y": 0, "w": 8, "h": 8 }, "duration": 50 },
    { "filename": "hero 1.ase", "frame": { "x": 8, "y": 0, "w": 8, "h": 8 }, "duration": 50 },
    { "filename": "hero 2.ase", "frame": { "x": 0, "y": 0, "w": 10, "h": 10 }, "duration": 100 },
    { "filename": "hero 3.ase", "frame": { "x": 10, "y": 0, "w": 10, "h": 10 }, "duration": 120 }
  ],
  "meta": {
    "app": "https://www.aseprite.org/",
    "image": "hero.png",
    "size": { "w": 20, "h": 10 },
    "frameTags": [
      { "name": "WALK", "from": 2, "to": 3, "direction": "forward" }
    ]
  }
}
`

const headerPreamble = `#ifndef _RENDER_CONFIG_H_
#define _RENDER_CONFIG_H_

#include <SDL2/SDL.h>
#include "config.h"

/* MAKE AUTOGEN - DO NOT CHANGE ANYTHING UNDER THIS LINE */
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func mkdirAll(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
