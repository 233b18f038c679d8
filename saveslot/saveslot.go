package saveslot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/unknown321/gbasave/footer"
	"github.com/unknown321/gbasave/size"
)

type ESlot uint

//go:generate stringer -type=ESlot
const (
	Main ESlot = iota
	Backup
)

var ErrUnknownSlot = errors.New("unknown save slot")

func Parse(s string) (ESlot, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "main", "":
		return Main, nil
	case "backup":
		return Backup, nil
	}

	return Main, fmt.Errorf("%w: %q", ErrUnknownSlot, s)
}

// Offset returns the copy offset backing slot. Main is the copy with the
// higher save index, Backup the other one; equal indexes resolve to copy 0.
func Offset(data []byte, slot ESlot) (int, error) {
	a, err := footer.Read(data, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("copy 0: %w", err)
	}

	b, err := footer.Read(data, size.SaveSection, 0)
	if err != nil {
		return 0, fmt.Errorf("copy 1: %w", err)
	}

	switch slot {
	case Main:
		if b.SaveIndex > a.SaveIndex {
			return size.SaveSection, nil
		}
	case Backup:
		if a.SaveIndex > b.SaveIndex {
			return size.SaveSection, nil
		}
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownSlot, slot)
	}

	return 0, nil
}
