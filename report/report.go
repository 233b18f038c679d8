package report

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/tidwall/sjson"
	"github.com/unknown321/gbasave/crypt"
	"github.com/unknown321/gbasave/item"
	"github.com/unknown321/gbasave/save"
)

type Entry struct {
	Index  uint16 `json:"index"`
	Amount uint16 `json:"amount"`
	Pocket string `json:"pocket"`
}

// Items lists non-empty item slots, PC storage first. Unknown versions have none.
func Items(s *save.Save) ([]Entry, error) {
	l, ok := crypt.Params(s.Version)
	if !ok {
		return nil, nil
	}

	var res []Entry
	for i := range l.ItemCount {
		it, err := item.Read(s.Data, l.Storage, i)
		if err != nil {
			return nil, err
		}
		if it.Index == 0 {
			continue
		}

		e := Entry{Index: it.Index, Amount: it.Amount, Pocket: "bag"}
		if i < l.PCItemCount {
			e.Pocket = "pc"
		}
		res = append(res, e)
	}

	return res, nil
}

// Fingerprint is the md5 of the decrypted unpacked buffer.
func Fingerprint(s *save.Save) string {
	return fmt.Sprintf("%x", md5.Sum(s.Data))
}

func JSON(name string, s *save.Save) ([]byte, error) {
	var err error
	out := []byte(`{}`)

	order := make([]int, len(s.Order))
	for i, v := range s.Order {
		order[i] = int(v)
	}

	for i, kv := range []struct {
		path  string
		value any
	}{
		{"file", name},
		{"version", s.Version.String()},
		{"slot", strings.ToLower(s.Slot.String())},
		{"slot_offset", s.Offset},
		{"save_index", s.SaveIndex},
		{"order", order},
		{"fingerprint", Fingerprint(s)},
	} {
		if out, err = sjson.SetBytes(out, kv.path, kv.value); err != nil {
			return nil, fmt.Errorf("set field %d: %w", i, err)
		}
	}

	l, ok := crypt.Params(s.Version)
	if !ok {
		return out, nil
	}

	money, err := item.Money(s.Data, l.Storage)
	if err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "money", money); err != nil {
		return nil, err
	}

	items, err := Items(s)
	if err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "items", []Entry{}); err != nil {
		return nil, err
	}
	for _, e := range items {
		if out, err = sjson.SetBytes(out, "items.-1", e); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func Text(name string, s *save.Save) (string, error) {
	out := fmt.Sprintf("%s: %s, slot %s at %#x, save index %d\n", name, s.Version, s.Slot, s.Offset, s.SaveIndex)
	out += fmt.Sprintf("\tsection order: %v\n", s.Order)
	out += fmt.Sprintf("\tfingerprint: %s\n", Fingerprint(s))

	l, ok := crypt.Params(s.Version)
	if !ok {
		return out, nil
	}

	money, err := item.Money(s.Data, l.Storage)
	if err != nil {
		return "", err
	}
	out += fmt.Sprintf("\tmoney: %d\n", money)

	items, err := Items(s)
	if err != nil {
		return "", err
	}
	for _, e := range items {
		out += fmt.Sprintf("\t%s item %d: %d\n", e.Pocket, e.Index, e.Amount)
	}

	return out, nil
}
