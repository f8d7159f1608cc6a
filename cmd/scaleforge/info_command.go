package main

import (
	"github.com/spf13/cobra"

	"scaleforge/internal/scale"
)

// scaleInfo is the JSON shape of one scl file's summary.
type scaleInfo struct {
	File        string            `json:"file"`
	Description string            `json:"description"`
	Notes       int               `json:"notes"`
	PeriodCents float64           `json:"period_cents"`
	Just        bool              `json:"just"`
	Info        map[string]string `json:"info,omitempty"`
}

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "info <file.scl>",
		Short:       "Print one scl file's summary and provenance block as JSON",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := scale.ParseFile(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, scaleInfo{
				File:        args[0],
				Description: p.Description,
				Notes:       len(p.Tones),
				PeriodCents: p.Period(),
				Just:        p.Just(),
				Info:        p.Info,
			})
		},
	}
}
