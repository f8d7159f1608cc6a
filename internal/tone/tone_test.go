package tone_test

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"scaleforge/internal/tone"
)

func TestFromRatioCents(t *testing.T) {
	fifth, err := tone.FromRatio(3, 2)
	require.NoError(t, err)
	require.InDelta(t, 701.955, fifth.Cents(), 1e-3)
	require.Equal(t, "3/2", fifth.String())
	require.True(t, fifth.IsRatio())
}

func TestFromRatioRejectsNonPositiveParts(t *testing.T) {
	_, err := tone.FromRatio(0, 2)
	require.Error(t, err)
	_, err = tone.FromRatio(3, -2)
	require.Error(t, err)
}

func TestPeriodInvariant(t *testing.T) {
	// 3/1 is above the octave, 1/1 is the degenerate unison.
	_, err := tone.FromRatio(3, 1)
	require.Error(t, err)
	_, err = tone.FromRatio(1, 1)
	require.Error(t, err)

	// The octave itself is the largest allowed interval.
	octave, err := tone.FromRatio(2, 1)
	require.NoError(t, err)
	require.InDelta(t, 1200.0, octave.Cents(), 1e-9)

	// A wider period admits wider intervals.
	twelfth, err := tone.FromRatio(3, 1, tone.WithPeriod(1200*math.Log2(3)))
	require.NoError(t, err)
	require.InDelta(t, 1901.955, twelfth.Cents(), 1e-3)
}

func TestCrossCheckCents(t *testing.T) {
	_, err := tone.FromRatio(3, 2, tone.WithCheckCents(701.955))
	require.NoError(t, err)

	// A transcribed value half a cent off is a catalog mistake.
	_, err = tone.FromRatio(3, 2, tone.WithCheckCents(703.0))
	require.Error(t, err)
	require.Contains(t, err.Error(), "source quotes")
}

func TestRatioCentsAgreement(t *testing.T) {
	ratio, err := tone.FromRatio(3, 2)
	require.NoError(t, err)
	direct, err := tone.FromCents(701.955)
	require.NoError(t, err)
	require.InDelta(t, ratio.Cents(), direct.Cents(), 1e-3)
}

func TestOversizedRatioRendersAsCents(t *testing.T) {
	// 3^40 / 2^63 is a fine interval but its parts exceed 2^31-1, which
	// the format cannot carry; rendering must fall back to cents.
	n := new(big.Int).Exp(big.NewInt(3), big.NewInt(40), nil)
	d := new(big.Int).Exp(big.NewInt(2), big.NewInt(63), nil)
	r := new(big.Rat).SetFrac(n, d)
	stacked, err := tone.FromRat(r)
	require.NoError(t, err)
	rendered := stacked.String()
	require.NotContains(t, rendered, "/")
	require.Contains(t, rendered, ".")
}

func TestFormatCentsAlwaysHasDecimalPoint(t *testing.T) {
	require.Equal(t, "1200.0", tone.FormatCents(1200))
	require.Equal(t, "701.955", tone.FormatCents(701.955))
	require.Equal(t, "386.313714", tone.FormatCents(386.31371386))
}

func TestPowerValue(t *testing.T) {
	// (4/3)^(1/10), the first step of an equally divided fourth.
	p, err := tone.NewPower(big.NewRat(4, 3), 1, 10)
	require.NoError(t, err)
	require.InDelta(t, 49.8, p.Cents(), 0.1)
	require.Contains(t, p.String(), ".")

	// An integral exponent collapses back to a ratio.
	sq, err := tone.NewPower(big.NewRat(4, 3), 2, 1)
	require.NoError(t, err)
	require.Equal(t, "16/9", sq.String())
}

func TestLinePadding(t *testing.T) {
	plain := tone.Must(tone.FromRatio(3, 2))
	require.Equal(t, "3/2", plain.Line(10))

	commented := tone.Must(tone.FromRatio(3, 2, tone.WithComment("pure fifth")))
	line := commented.Line(6)
	require.Equal(t, "3/2   ! pure fifth", line)

	// Without padding the comment still gets one separating space.
	require.Equal(t, "3/2 ! pure fifth", commented.Line(0))
	require.True(t, strings.HasPrefix(line, "3/2"))
}

func TestSortOrdersByCents(t *testing.T) {
	tones := []tone.Tone{
		tone.Must(tone.FromRatio(2, 1)),
		tone.Must(tone.FromRatio(9, 8)),
		tone.Must(tone.FromRatio(3, 2)),
	}
	tone.Sort(tones)
	require.Equal(t, "9/8", tones[0].String())
	require.Equal(t, "3/2", tones[1].String())
	require.Equal(t, "2/1", tones[2].String())
}
