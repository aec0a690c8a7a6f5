package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/overlay/internal/placement"
	"github.com/alexisbeaulieu97/overlay/internal/surface"
	overlayerrors "github.com/alexisbeaulieu97/overlay/pkg/errors"
)

type placeOptions struct {
	anchor     surface.Rect
	size       surface.Size
	viewport   surface.Size
	side       string
	offset     int
	edgeMargin int
	jsonOutput bool
}

func newPlaceCmd() *cobra.Command {
	opts := &placeOptions{viewport: surface.Size{Width: 80, Height: 24}}

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Resolve where a floating box would be placed",
		Long: `Place runs the placement resolver for one anchor and floating size. The
requested side is tried first; if the box does not fit it flips once to the
opposite side, then the cross axis is clamped into the viewport.`,
		Example: "  overlay place --anchor 10,0,8,1 --size 20x5 --side top",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlace(cmd, opts)
		},
	}

	cmd.Flags().Var(rectValue{&opts.anchor}, "anchor", "Anchor rectangle")
	cmd.Flags().Var(sizeValue{&opts.size}, "size", "Floating box size")
	cmd.Flags().Var(sizeValue{&opts.viewport}, "viewport", "Viewport size")
	cmd.Flags().StringVar(&opts.side, "side", "bottom", "Preferred side (top, bottom, left, right)")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "Gap between anchor and box")
	cmd.Flags().IntVar(&opts.edgeMargin, "edge-margin", placement.DefaultEdgeMargin, "Gap kept from the viewport edge")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	_ = cmd.MarkFlagRequired("anchor")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

type placeJSONRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type placeJSONPayload struct {
	Side    string        `json:"side"`
	Top     int           `json:"top"`
	Left    int           `json:"left"`
	Flipped bool          `json:"flipped"`
	Rect    placeJSONRect `json:"rect"`
}

func runPlace(cmd *cobra.Command, opts *placeOptions) error {
	side, err := placement.ParseSide(opts.side)
	if err != nil {
		return overlayerrors.NewUsageError("side", err.Error())
	}
	if opts.edgeMargin < 0 {
		return overlayerrors.NewUsageError("edge-margin", "must not be negative")
	}

	resolver := placement.Resolver{EdgeMargin: opts.edgeMargin}
	viewport := surface.NewRect(0, 0, opts.viewport.Width, opts.viewport.Height)
	p := resolver.Resolve(opts.anchor, opts.size, side, viewport, opts.offset)
	rect := p.Rect(opts.size)

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(placeJSONPayload{
			Side:    p.Side.String(),
			Top:     p.Top,
			Left:    p.Left,
			Flipped: p.Flipped,
			Rect:    placeJSONRect{X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height},
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "side:    %s\n", p.Side)
	fmt.Fprintf(out, "top:     %d\n", p.Top)
	fmt.Fprintf(out, "left:    %d\n", p.Left)
	fmt.Fprintf(out, "flipped: %t\n", p.Flipped)
	if !viewport.Encloses(rect) {
		fmt.Fprintln(out, "note:    box overflows the viewport")
	}
	return nil
}
