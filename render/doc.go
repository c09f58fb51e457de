// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package render draws tournament brackets as PNG images with fogleman/gg.
//
// Slots are laid out left to right by round depth. Eligible slots are
// green, played slots gray, undecided match slots white and a decided
// champion gold. Blank leaves next to a bye are not drawn.
package render
