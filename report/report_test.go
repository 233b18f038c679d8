package report

import (
	"crypto/md5"
	"fmt"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
	"github.com/unknown321/gbasave/crypt"
	"github.com/unknown321/gbasave/item"
	"github.com/unknown321/gbasave/save"
	"github.com/unknown321/gbasave/savetest"
	"github.com/unknown321/gbasave/saveslot"
	"github.com/unknown321/gbasave/savetype"
	"github.com/unknown321/gbasave/size"
)

// emerald builds a decoded Emerald save with one PC item and one bag item
func emerald(t *testing.T) *save.Save {
	t.Helper()
	const key = 0x00020001
	c := savetest.Valid(size.SaveSection, 3)
	data := savetest.New(savetest.Valid(0, 2), c)
	l, _ := crypt.Params(savetype.Emerald)

	c.PutUint32(data, savetype.RSEKeyOffset, key)
	c.PutUint32(data, savetype.RSEKey2Offset, key)
	c.PutUint32(data, l.Storage, 1500^key)
	for i := range l.ItemCount {
		c.PutUint16(data, item.Offset(l.Storage, i), 0)
	}
	c.PutUint16(data, item.Offset(l.Storage, 0), 13)
	c.PutUint16(data, item.Offset(l.Storage, 0)+2, 4)
	c.PutUint16(data, item.Offset(l.Storage, 51), 20)
	c.PutUint16(data, item.Offset(l.Storage, 51)+2, 9^0x0001)

	s, err := save.Load(data, saveslot.Main)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return s
}

// TestItems checks item listing and pockets
func TestItems(t *testing.T) {
	items, err := Items(emerald(t))
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2: %+v", len(items), items)
	}
	if items[0] != (Entry{Index: 13, Amount: 4, Pocket: "pc"}) {
		t.Errorf("first item = %+v", items[0])
	}
	if items[1] != (Entry{Index: 20, Amount: 9, Pocket: "bag"}) {
		t.Errorf("second item = %+v", items[1])
	}
}

// TestJSON checks the report fields
func TestJSON(t *testing.T) {
	s := emerald(t)
	out, err := JSON("emerald.sav", s)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if !gjson.ValidBytes(out) {
		t.Fatalf("invalid json: %s", out)
	}

	r := gjson.ParseBytes(out)
	if v := r.Get("file").String(); v != "emerald.sav" {
		t.Errorf("file = %q", v)
	}
	if v := r.Get("version").String(); v != "Emerald" {
		t.Errorf("version = %q", v)
	}
	if v := r.Get("slot").String(); v != "main" {
		t.Errorf("slot = %q", v)
	}
	if v := r.Get("slot_offset").Int(); v != size.SaveSection {
		t.Errorf("slot_offset = %#x", v)
	}
	if v := r.Get("save_index").Int(); v != 3 {
		t.Errorf("save_index = %d", v)
	}
	if v := r.Get("order.#").Int(); v != size.BlockCount {
		t.Errorf("order has %d entries", v)
	}
	if v := r.Get("order.13").Int(); v != 13 {
		t.Errorf("order.13 = %d", v)
	}
	if v := r.Get("money").Uint(); v != 1500 {
		t.Errorf("money = %d", v)
	}
	if v := r.Get("items.#").Int(); v != 2 {
		t.Errorf("items has %d entries", v)
	}
	if v := r.Get("items.1.amount").Int(); v != 9 {
		t.Errorf("items.1.amount = %d", v)
	}
	if v := r.Get("items.0.pocket").String(); v != "pc" {
		t.Errorf("items.0.pocket = %q", v)
	}
	if v := r.Get("fingerprint").String(); v != Fingerprint(s) || len(v) != 32 {
		t.Errorf("fingerprint = %q", v)
	}
}

// TestJSON_Unknown checks that unknown versions have no money or items
func TestJSON_Unknown(t *testing.T) {
	c := savetest.Valid(0, 1)
	data := savetest.New(c)
	c.PutUint32(data, savetype.RSEKeyOffset, 1)
	c.PutUint32(data, savetype.RSEKey2Offset, 2)
	c.PutUint32(data, savetype.FRLGKeyOffset, 3)
	c.PutUint32(data, savetype.FRLGKey2Offset, 4)

	s, err := save.Load(data, saveslot.Main)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	out, err := JSON("x.sav", s)
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	r := gjson.ParseBytes(out)
	if r.Get("money").Exists() || r.Get("items").Exists() {
		t.Errorf("unexpected money or items: %s", out)
	}
	if v := r.Get("version").String(); v != "Unknown" {
		t.Errorf("version = %q", v)
	}
	if v := r.Get("slot").String(); v != "main" {
		t.Errorf("slot = %q", v)
	}
}

// TestText checks the plain summary
func TestText(t *testing.T) {
	out, err := Text("emerald.sav", emerald(t))
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	for _, want := range []string{"Emerald", "money: 1500", "pc item 13: 4", "bag item 20: 9"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary is missing %q:\n%s", want, out)
		}
	}
}

// TestFingerprint_Stable checks that equal data hashes equally
func TestFingerprint_Stable(t *testing.T) {
	a := emerald(t)
	b := emerald(t)
	if Fingerprint(a) != Fingerprint(b) {
		t.Error("fingerprint differs for identical saves")
	}
	b.Data[0] ^= 0xFF
	if Fingerprint(a) == Fingerprint(b) {
		t.Error("fingerprint ignores data changes")
	}
}

// TestFingerprint_FullSize checks a zeroed buffer of the unpacked size
func TestFingerprint_FullSize(t *testing.T) {
	got := Fingerprint(&save.Save{Data: make([]byte, size.UnpackedSize)})
	want := fmt.Sprintf("%x", md5.Sum(make([]byte, size.UnpackedSize)))
	if got != want {
		t.Errorf("fingerprint = %q, want %q", got, want)
	}
}
