package ir

import (
	"slices"
	"strconv"
	"testing"
)

func TestOverlayObject(t *testing.T) {
	base := obj("a", FromInt(1), "b", FromInt(2))
	y := Overlay(base, obj("b", FromInt(20)), MaxOverlayDepth)
	y = Overlay(y, obj("c", FromInt(3)), MaxOverlayDepth)
	y = Overlay(y, obj("a", FromInt(10)), MaxOverlayDepth)

	if got, want := keys(y), []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("keys %v want %v", got, want)
	}
	want := obj("a", FromInt(10), "b", FromInt(20), "c", FromInt(3))
	if !Equal(y, want) {
		t.Errorf("overlay content differs")
	}
	if y.Hash() != want.Hash() {
		t.Errorf("overlay hash differs")
	}
	if y.Len() != 3 || y.Depth() != 3 {
		t.Errorf("len %d depth %d", y.Len(), y.Depth())
	}
	if keys(base)[1] != "b" || base.GetString("b").String != "2" {
		t.Errorf("base modified")
	}
	flat := y.Flatten()
	if flat.IsOverlay() || !Equal(flat, want) {
		t.Errorf("flatten")
	}
}

func TestOverlayArray(t *testing.T) {
	y := FromSlice(nil)
	for i := range 5 {
		y = Overlay(y, FromSlice([]*Node{FromInt(int64(i))}), MaxOverlayDepth)
	}
	var got []string
	for v := range y.Items() {
		got = append(got, v.String)
	}
	if want := []string{"0", "1", "2", "3", "4"}; !slices.Equal(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestOverlayDepthBound(t *testing.T) {
	y := FromKeyVals(nil)
	for i := range 100 {
		k := "k" + strconv.Itoa(i%10)
		y = Overlay(y, obj(k, FromInt(int64(i))), 4)
		if y.Depth() > 4 {
			t.Fatalf("depth %d after %d merges", y.Depth(), i+1)
		}
	}
	if y.Len() != 10 {
		t.Errorf("len %d", y.Len())
	}
	if v := y.GetString("k3"); v == nil || v.String != "93" {
		t.Errorf("k3: %v", v)
	}
}
