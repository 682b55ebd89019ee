package main

import (
	"io"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/robert-malhotra/go-eventio/eventio"
)

type typeStats struct {
	name       string
	count      int
	containers int
	bytes      uint64
	maxDepth   int
}

// printSummary walks f and writes a table of object counts per type id.
func printSummary(f *eventio.File, w io.Writer) error {
	stats := make(map[uint32]*typeStats)
	err := eventio.Walk(f, func(obj eventio.Object, depth int) error {
		h := obj.Header()
		s, ok := stats[h.Type()]
		if !ok {
			s = &typeStats{name: obj.Name()}
			stats[h.Type()] = s
		}
		s.count++
		if h.IsContainer() {
			s.containers++
		}
		s.bytes += h.HeaderSize() + h.Size()
		s.maxDepth = max(s.maxDepth, depth)
		return nil
	})
	if err != nil {
		return err
	}

	types := make([]uint32, 0, len(stats))
	for typ := range stats {
		types = append(types, typ)
	}
	slices.Sort(types)

	out := tablewriter.NewWriter(w)
	out.SetHeader([]string{"Type", "Name", "Count", "Containers", "Bytes", "Max Depth"})
	out.SetAutoWrapText(false)
	out.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, typ := range types {
		s := stats[typ]
		out.Append([]string{
			strconv.FormatUint(uint64(typ), 10),
			s.name,
			strconv.Itoa(s.count),
			strconv.Itoa(s.containers),
			strconv.FormatUint(s.bytes, 10),
			strconv.Itoa(s.maxDepth),
		})
	}
	out.Render()
	return nil
}
