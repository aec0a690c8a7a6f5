package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/alexisbeaulieu97/overlay/internal/surface"
)

// rectValue parses "x,y,w,h" into a surface.Rect.
type rectValue struct {
	rect *surface.Rect
}

func (v rectValue) String() string {
	if v.rect == nil {
		return ""
	}
	return fmt.Sprintf("%d,%d,%d,%d", v.rect.X, v.rect.Y, v.rect.Width, v.rect.Height)
}

func (v rectValue) Set(value string) error {
	n, err := parseInts(value, 4)
	if err != nil {
		return err
	}
	*v.rect = surface.NewRect(n[0], n[1], n[2], n[3])
	return nil
}

func (v rectValue) Type() string { return "x,y,w,h" }

// sizeValue parses "WxH" (or "W,H") into a surface.Size.
type sizeValue struct {
	size *surface.Size
}

func (v sizeValue) String() string {
	if v.size == nil {
		return ""
	}
	return fmt.Sprintf("%dx%d", v.size.Width, v.size.Height)
}

func (v sizeValue) Set(value string) error {
	n, err := parseInts(strings.ReplaceAll(strings.ToLower(value), "x", ","), 2)
	if err != nil {
		return err
	}
	if n[0] <= 0 || n[1] <= 0 {
		return fmt.Errorf("size %q must be positive", value)
	}
	*v.size = surface.Size{Width: n[0], Height: n[1]}
	return nil
}

func (v sizeValue) Type() string { return "WxH" }

var (
	_ pflag.Value = rectValue{}
	_ pflag.Value = sizeValue{}
)

func parseInts(value string, want int) ([]int, error) {
	parts := strings.Split(value, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d comma-separated integers, got %q", want, value)
	}
	out := make([]int, want)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", part)
		}
		out[i] = n
	}
	return out, nil
}
