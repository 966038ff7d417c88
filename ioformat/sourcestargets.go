package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maxedgeorient/meo/core"
)

// ParseSources reads one vertex name per line from r and marks each as a
// source via g.MarkSource. Blank lines are skipped.
func ParseSources(r io.Reader, g *core.Graph) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		if err := g.MarkSource(name); err != nil {
			return fmt.Errorf("ioformat: sources line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("ioformat: read sources: %w", err)
	}
	return nil
}

// ParseTargets reads one vertex name per line from r, each optionally
// followed by a tab-separated target-weight (default 1 if omitted), and
// marks each as a target via g.MarkTarget. Blank lines are skipped.
func ParseTargets(r io.Reader, g *core.Graph) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := strings.Split(text, "\t")
		name := strings.TrimSpace(fields[0])
		if name == "" {
			return fmt.Errorf("ioformat: targets line %d: %w", line, ErrEmptyName)
		}

		weight := 1.0
		if len(fields) > 1 && strings.TrimSpace(fields[1]) != "" {
			w, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
			if err != nil {
				return fmt.Errorf("ioformat: targets line %d: %w", line, ErrBadTargetWeight)
			}
			weight = w
		}
		if weight < 0 || weight > 1 {
			return fmt.Errorf("ioformat: targets line %d: %w", line, ErrBadTargetWeight)
		}

		if err := g.MarkTarget(name, weight); err != nil {
			return fmt.Errorf("ioformat: targets line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("ioformat: read targets: %w", err)
	}
	return nil
}
