// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"fmt"
	"math"
	"strings"
)

// WCAGScore is the WCAG 2.1 conformance level of a contrast ratio
// for normal text.
type WCAGScore int32

const (
	// AAA is a ratio of at least 7.
	AAA WCAGScore = iota

	// AA is a ratio of at least 4.5.
	AA

	// Fail is any lower ratio.
	Fail

	wcagScoreN
)

var wcagScoreNames = [...]string{"AAA", "AA", "FAIL"}

var wcagScoreColors = [...]string{"#0a8a3c", "#5f9e1e", "#d4351c"}

// WCAGScoreFor returns the conformance level of the given ratio.
func WCAGScoreFor(ratio float64) WCAGScore {
	switch {
	case ratio >= 7:
		return AAA
	case ratio >= 4.5:
		return AA
	default:
		return Fail
	}
}

// Color returns the hex badge color of the score.
func (s WCAGScore) Color() string {
	if s < 0 || s >= wcagScoreN {
		return wcagScoreColors[Fail]
	}
	return wcagScoreColors[s]
}

// String returns the persisted name of the score.
func (s WCAGScore) String() string {
	if s < 0 || s >= wcagScoreN {
		return fmt.Sprintf("WCAGScore(%d)", int32(s))
	}
	return wcagScoreNames[s]
}

// SetString sets the score from its persisted name, case-insensitively.
func (s *WCAGScore) SetString(str string) error {
	for i, nm := range wcagScoreNames {
		if strings.EqualFold(nm, str) {
			*s = WCAGScore(i)
			return nil
		}
	}
	return fmt.Errorf("contrast.WCAGScore: unknown score %q", str)
}

// MarshalText implements [encoding.TextMarshaler].
func (s WCAGScore) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *WCAGScore) UnmarshalText(text []byte) error { return s.SetString(string(text)) }

// APCAScore is the APCA usage recommendation of an Lc value.
type APCAScore int32

const (
	// FluentText is |Lc| >= 90, preferred for fluent body text.
	FluentText APCAScore = iota

	// BodyText is |Lc| >= 75, the minimum for columns of body text.
	BodyText

	// ContentText is |Lc| >= 60, the minimum for content text
	// that is not body text.
	ContentText

	// Headlines is |Lc| >= 45, for large and heavy headlines.
	Headlines

	// SpotText is |Lc| >= 30, for spot readable text such as
	// placeholders and disabled labels.
	SpotText

	// NonText is |Lc| >= 15, the minimum for non-text elements.
	NonText

	// Avoid is any lower contrast, which is invisible to many users.
	Avoid

	apcaScoreN
)

var apcaScoreNames = [...]string{"FLUENT_TEXT", "BODY_TEXT", "CONTENT_TEXT", "HEADLINES", "SPOT_TEXT", "NON_TEXT", "AVOID"}

var apcaScoreColors = [...]string{"#0a8a3c", "#3f9b2a", "#5f9e1e", "#b58a00", "#d97706", "#e8590c", "#d4351c"}

var apcaScoreMins = [...]float64{90, 75, 60, 45, 30, 15}

// APCAScoreFor returns the usage recommendation of the given Lc value.
// The polarity of the value is ignored.
func APCAScoreFor(lc float64) APCAScore {
	a := math.Abs(lc)
	for i, m := range apcaScoreMins {
		if a >= m {
			return APCAScore(i)
		}
	}
	return Avoid
}

// Color returns the hex badge color of the score.
func (s APCAScore) Color() string {
	if s < 0 || s >= apcaScoreN {
		return apcaScoreColors[Avoid]
	}
	return apcaScoreColors[s]
}

// String returns the persisted name of the score.
func (s APCAScore) String() string {
	if s < 0 || s >= apcaScoreN {
		return fmt.Sprintf("APCAScore(%d)", int32(s))
	}
	return apcaScoreNames[s]
}

// SetString sets the score from its persisted name, case-insensitively.
func (s *APCAScore) SetString(str string) error {
	for i, nm := range apcaScoreNames {
		if strings.EqualFold(nm, str) {
			*s = APCAScore(i)
			return nil
		}
	}
	return fmt.Errorf("contrast.APCAScore: unknown score %q", str)
}

// MarshalText implements [encoding.TextMarshaler].
func (s APCAScore) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *APCAScore) UnmarshalText(text []byte) error { return s.SetString(string(text)) }
