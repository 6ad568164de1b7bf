// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trajectory

import "cogentcore.org/core/enums"

var _FadeModesValues = []FadeModes{0, 1}

// FadeModesN is the highest valid value for type FadeModes, plus one.
const FadeModesN FadeModes = 2

var _FadeModesValueMap = map[string]FadeModes{`current`: 0, `legacy`: 1}

var _FadeModesDescMap = map[FadeModes]string{0: `FadeCurrent is the fade formula in use: unsigned modulo wraparound for ellipses, with the extreme-anomaly dropoff in both regimes.`, 1: `FadeLegacy is the older fade formula: signed half-range recentring for ellipses and no extreme-anomaly dropoff.`}

var _FadeModesMap = map[FadeModes]string{0: `current`, 1: `legacy`}

// String returns the string representation of this FadeModes value.
func (i FadeModes) String() string { return enums.String(i, _FadeModesMap) }

// SetString sets the FadeModes value from its string representation,
// and returns an error if the string is invalid.
func (i *FadeModes) SetString(s string) error {
	return enums.SetStringLower(i, s, _FadeModesValueMap, "FadeModes")
}

// Int64 returns the FadeModes value as an int64.
func (i FadeModes) Int64() int64 { return int64(i) }

// SetInt64 sets the FadeModes value from an int64.
func (i *FadeModes) SetInt64(in int64) { *i = FadeModes(in) }

// Desc returns the description of the FadeModes value.
func (i FadeModes) Desc() string { return enums.Desc(i, _FadeModesDescMap) }

// FadeModesValues returns all possible values for the type FadeModes.
func FadeModesValues() []FadeModes { return _FadeModesValues }

// Values returns all possible values for the type FadeModes.
func (i FadeModes) Values() []enums.Enum { return enums.Values(_FadeModesValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i FadeModes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *FadeModes) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "FadeModes")
}
