// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package atlas

import (
	"errors"
	"testing"
)

func TestAllocateBottomLeft(t *testing.T) {
	a := New(64, 64)

	r1, err := a.Allocate(16, 16)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if r1.X != 0 || r1.Y != 0 {
		t.Errorf("first region at (%d,%d), want (0,0)", r1.X, r1.Y)
	}

	r2, err := a.Allocate(16, 16)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if r2.Y != 0 || r2.X != 16 {
		t.Errorf("second region at (%d,%d), want (16,0)", r2.X, r2.Y)
	}
}

func TestAllocateNoOverlap(t *testing.T) {
	a := New(128, 128)
	occupied := make(map[[2]int]bool)

	sizes := [][2]int{{32, 16}, {16, 32}, {48, 8}, {8, 48}, {20, 20}, {64, 4}, {12, 12}}
	for _, s := range sizes {
		r, err := a.Allocate(s[0], s[1])
		if err != nil {
			t.Fatalf("Allocate(%d, %d): %v", s[0], s[1], err)
		}
		if r.W != s[0] || r.H != s[1] {
			t.Errorf("region size %dx%d, want %dx%d", r.W, r.H, s[0], s[1])
		}
		if r.X < 0 || r.Y < 0 || r.X+r.W > 128 || r.Y+r.H > 128 {
			t.Errorf("region %+v out of bounds", r)
		}
		for y := r.Y; y < r.Y+r.H; y++ {
			for x := r.X; x < r.X+r.W; x++ {
				if occupied[[2]int{x, y}] {
					t.Fatalf("region %+v overlaps at (%d,%d)", r, x, y)
				}
				occupied[[2]int{x, y}] = true
			}
		}
	}
}

func TestAllocateFull(t *testing.T) {
	a := New(32, 32)
	if _, err := a.Allocate(32, 32); err != nil {
		t.Fatalf("Allocate(32, 32): %v", err)
	}
	_, err := a.Allocate(1, 1)
	if !errors.Is(err, ErrAtlasFull) {
		t.Errorf("Allocate on full atlas = %v, want ErrAtlasFull", err)
	}
}

func TestAllocateTooWide(t *testing.T) {
	a := New(32, 32)
	_, err := a.Allocate(33, 1)
	if !errors.Is(err, ErrAtlasFull) {
		t.Errorf("Allocate(33, 1) = %v, want ErrAtlasFull", err)
	}
}

func TestAllocateInvalidSize(t *testing.T) {
	a := New(32, 32)
	if _, err := a.Allocate(0, 5); err == nil {
		t.Error("Allocate(0, 5) succeeded")
	}
	if _, err := a.Allocate(5, -1); err == nil {
		t.Error("Allocate(5, -1) succeeded")
	}
}

func TestUsedFraction(t *testing.T) {
	a := New(64, 64)
	if a.Used() != 0 {
		t.Errorf("Used() = %v on empty atlas", a.Used())
	}
	a.Allocate(32, 32)
	want := float64(32*32) / float64(64*64)
	if a.Used() != want {
		t.Errorf("Used() = %v, want %v", a.Used(), want)
	}
}

func TestSetWritesPixels(t *testing.T) {
	a := New(16, 16)
	r, err := a.Allocate(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Set(r, []byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	img := a.Image()
	got := []byte{
		img.Pix[r.Y*img.Stride+r.X],
		img.Pix[r.Y*img.Stride+r.X+1],
		img.Pix[(r.Y+1)*img.Stride+r.X],
		img.Pix[(r.Y+1)*img.Stride+r.X+1],
	}
	for i, want := range []byte{1, 2, 3, 4} {
		if got[i] != want {
			t.Errorf("pixel %d = %d, want %d", i, got[i], want)
		}
	}
}

func TestSetValidation(t *testing.T) {
	a := New(16, 16)
	if err := a.Set(Region{X: 15, Y: 0, W: 4, H: 1}, []byte{0, 0, 0, 0}); err == nil {
		t.Error("Set out of bounds succeeded")
	}
	if err := a.Set(Region{X: 0, Y: 0, W: 2, H: 2}, []byte{0}); err == nil {
		t.Error("Set with short pixel data succeeded")
	}
}

func BenchmarkAllocate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		a := New(512, 512)
		for {
			if _, err := a.Allocate(12, 14); err != nil {
				break
			}
		}
	}
}
