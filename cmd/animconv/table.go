package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ivlev/animconv/internal/engine"
)

func renderReport(r *engine.Report, build string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(fmt.Sprintf("animconv %s | %.2f -> %.2f FPS | frames %d-%d",
		build, r.Options.RecordingFPS, r.Options.TargetFPS, r.FrameStart, r.FrameEnd))

	tw.AppendHeader(table.Row{"Node", "Keys in", "Keys out", "First", "Last"})

	totalIn, totalOut := 0, 0
	for _, n := range r.Nodes {
		first, last := "-", "-"
		if n.OutputKeys > 0 {
			first, last = strconv.Itoa(n.FirstFrame), strconv.Itoa(n.LastFrame)
		}
		tw.AppendRow(table.Row{n.Path, n.InputKeys, n.OutputKeys, first, last})
		totalIn += n.InputKeys
		totalOut += n.OutputKeys
	}

	tw.AppendFooter(table.Row{
		fmt.Sprintf("load %.2fs | convert %.2fs | write %.2fs",
			r.LoadTime.Seconds(), r.ConvTime.Seconds(), r.WriteTime.Seconds()),
		totalIn, totalOut, "", "",
	})

	columnConfigs := []table.ColumnConfig{{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft}}
	for i := 2; i <= 5; i++ {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
