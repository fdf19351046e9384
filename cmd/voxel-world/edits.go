package main

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"voxel-world/internal/block"
	"voxel-world/internal/world"
)

type placement struct {
	pos [3]int
	typ block.Type
}

// placeList collects repeated -place x,y,z,type flags
type placeList []placement

func (p *placeList) String() string {
	parts := make([]string, len(*p))
	for i, pl := range *p {
		parts[i] = fmt.Sprintf("%d,%d,%d,%s", pl.pos[0], pl.pos[1], pl.pos[2], pl.typ)
	}
	return strings.Join(parts, " ")
}

func (p *placeList) Set(v string) error {
	fields := strings.Split(v, ",")
	if len(fields) != 4 {
		return fmt.Errorf("want x,y,z,type, got %q", v)
	}
	pos, err := parsePos(fields[:3])
	if err != nil {
		return err
	}
	t, err := block.Parse(fields[3])
	if err != nil {
		return err
	}
	if t == block.Air {
		return fmt.Errorf("cannot place air, use -remove")
	}
	*p = append(*p, placement{pos: pos, typ: t})
	return nil
}

// posList collects repeated -remove x,y,z flags
type posList [][3]int

func (p *posList) String() string {
	parts := make([]string, len(*p))
	for i, pos := range *p {
		parts[i] = fmt.Sprintf("%d,%d,%d", pos[0], pos[1], pos[2])
	}
	return strings.Join(parts, " ")
}

func (p *posList) Set(v string) error {
	fields := strings.Split(v, ",")
	if len(fields) != 3 {
		return fmt.Errorf("want x,y,z, got %q", v)
	}
	pos, err := parsePos(fields)
	if err != nil {
		return err
	}
	*p = append(*p, pos)
	return nil
}

func parsePos(fields []string) ([3]int, error) {
	var pos [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return pos, fmt.Errorf("coordinate %q: %w", f, err)
		}
		pos[i] = n
	}
	return pos, nil
}

// applyEdits runs removals first, then placements. Every edit is attempted;
// failures are logged and returned together.
func applyEdits(w *world.World, places placeList, removes posList) error {
	var errs []error
	for _, p := range removes {
		if err := w.RemoveBlock(p[0], p[1], p[2]); err != nil {
			errs = append(errs, err)
			continue
		}
		log.Printf("removed block at %v", p)
	}
	for _, pl := range places {
		if err := w.AddBlock(pl.pos[0], pl.pos[1], pl.pos[2], pl.typ); err != nil {
			errs = append(errs, err)
			continue
		}
		log.Printf("placed %s at %v", pl.typ, pl.pos)
	}
	return errors.Join(errs...)
}
