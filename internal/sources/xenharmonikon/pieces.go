package xenharmonikon

import "math/big"

func q(n, d int64) *big.Rat { return big.NewRat(n, d) }

// pieces is the registry, in journal order.
var pieces = []piece{
	{
		key:         "xen02_wilson_indic",
		author:      authorWilson,
		issue:       "xen02",
		title:       "Bosanquet - A Bridge - A Doorway To Dialog",
		description: "Indic system of 22 s'ruti (for you, Lou)",
		tones: expectCount(22, ratios(
			t(256, 243),
			t(10, 9),
			t(16, 15),
			t(9, 8),
			t(32, 27),
			t(5, 4),
			t(6, 5),
			t(81, 64),
			t(4, 3),
			t(45, 32),
			t(27, 20),
			tc(729, 512, "Originally printed as 729/256"),
			t(3, 2),
			t(128, 81),
			t(5, 3),
			t(8, 5),
			t(27, 16),
			t(16, 9),
			t(15, 8),
			t(9, 5),
			t(243, 128),
			t(2, 1),
		)),
	},
	{
		key:         "xen02_wilson_arabic",
		author:      authorWilson,
		issue:       "xen02",
		title:       "Bosanquet - A Bridge - A Doorway To Dialog",
		description: "Classic Arabic System of 17 tones (for Gary)",
		tones: expectCount(17, ratios(
			t(135, 128),
			t(10, 9),
			t(9, 8),
			t(32, 27),
			t(5, 4),
			t(81, 64),
			t(4, 3),
			t(45, 32),
			t(40, 27),
			t(3, 2),
			tc(128, 81, "= 405/256"),
			t(5, 3),
			tc(27, 16, "Originally printed as 27/32"),
			t(16, 9),
			t(15, 8),
			t(160, 81),
			t(2, 1),
		)),
	},
	{
		key:         "xen02_wilson_combination_sets",
		author:      authorWilson,
		issue:       "xen02",
		title:       "Bosanquet - A Bridge - A Doorway To Dialog",
		description: "1*3*5*7*9*11 Combination Sets - 1 3 5 7 9 11 Diamondic Cross-Set",
		comments:    []string{"See also Wilson XH12 Figure 21, Beth"},
		tones: expectCount(32, combinationSet([][]int64{
			{5, 7, 11},
			{5, 7, 9, 11},
			{3, 5, 7, 11},
			{3, 5, 7, 9, 11},
			{3, 7, 11},
			{3, 7, 9, 11},
			{7, 11},
			{7, 9, 11},
			{5, 11},
			{5, 9, 11},
			{3, 7, 9, 11},
			{3, 5, 11},
			{3, 5, 9, 11},
			{3, 5, 7},
			{3, 5, 7, 9},
			{3, 11},
			{5, 7},
			{5, 7, 9},
			{11},
			{9, 11},
			{7},
			{7, 9},
			{3, 11},
			{3, 9, 11},
			{3, 7},
			{3, 7, 9},
			{3, 5},
			{3, 5, 9},
			{5},
			{5, 9},
			{1},
			{3, 5, 9},
			{3},
			{3, 9},
			{9},
		}, 3*11)),
	},
	{
		key:         "xen03_colvig_gamelan_7_11",
		author:      authorColvig,
		issue:       "xen03",
		title:       "An American Gamelan",
		description: "Colvig's American Gamelan 7-11 scale",
		comments:    []string{"Written as A C7 D E G11 A"},
		tones: expectCount(5, ratios(
			t(9, 8),
			t(11, 8),
			t(3, 2),
			t(7, 4),
			t(2, 1),
		)),
	},
	{
		key:         "xen03_secor_partch",
		author:      authorSecor,
		issue:       "xen03",
		title:       "A new look at the Partch Monophonic Fabric",
		description: "Partch Monophonic Fabric",
		tones: expectCount(43, ratios(
			t(2, 1),
			t(9, 8),
			t(32, 27),
			t(4, 3),
			t(3, 2),
			t(27, 16),
			t(16, 9),
			t(160, 81),
			t(10, 9),
			t(5, 4),
			t(40, 27),
			t(5, 3),
			t(15, 8),
			t(81, 80),
			t(16, 15),
			t(6, 5),
			t(27, 20),
			t(8, 5),
			t(9, 5),
			t(21, 20),
			t(7, 6),
			t(21, 16),
			t(7, 5),
			t(14, 9),
			t(7, 4),
			t(8, 7),
			t(9, 7),
			t(10, 7),
			t(32, 21),
			t(12, 7),
			t(40, 21),
			t(33, 32),
			t(11, 10),
			t(11, 9),
			t(11, 8),
			t(11, 7),
			t(11, 6),
			t(64, 33),
			t(12, 11),
			t(14, 11),
			t(16, 11),
			t(18, 11),
			t(20, 11),
		)),
	},
	{
		key:         "xen03_wilson_baglama",
		author:      authorWilson,
		issue:       "xen03",
		title:       "On the development of intonational systems by extended linear mapping",
		description: "Turkish Baglama Scale (as inferred from string lengths by E.W.)",
		tones: expectCount(17, ratios(
			t(256, 243),
			t(12, 11),
			t(9, 8),
			t(32, 27),
			t(5, 4),
			t(81, 64),
			t(4, 3),
			t(1024, 729),
			t(16, 11),
			t(3, 2),
			t(128, 81),
			t(5, 3),
			t(27, 16),
			t(16, 9),
			t(15, 8),
			t(243, 128),
			t(2, 1),
		)),
	},
	{
		key:         "xen06_london_ditone_diatonic",
		author:      authorLondon,
		issue:       "xen06",
		title:       "Eight Pieces for Harp in Ditone Diatonic",
		description: "Tuning for 'Eight Pieces for Harp in Ditone Diatonic'",
		tones: expectCount(7, cumulativeProduct(
			q(9, 8),
			q(9, 8),
			q(256, 243),
			q(9, 8),
			q(9, 8),
			q(9, 8),
			q(256, 243),
		)),
	},
	{
		key:         "xen18_darreg_djami_17",
		author:      authorDarreg,
		issue:       "xen18",
		title:       `Abdurakhman Djami's "Treatise on Music", translated from the Russian by Ivor Darreg`,
		page:        228,
		description: "Seventeen-tone system",
		tones: expectCount(17, notesFromSteps(
			[]float64{90, 180, 204, 294, 384, 408, 498, 588, 678, 702, 792, 882, 906, 996, 1086, 1176, 1200},
			[]float64{90, 90, 24, 90, 90, 24, 90, 90, 90, 24, 90, 90, 24, 90, 90, 90, 24},
		)),
	},
	{
		key:         "xen18_darreg_djami_ushshak",
		author:      authorDarreg,
		issue:       "xen18",
		title:       `Abdurakhman Djami's "Treatise on Music", translated from the Russian by Ivor Darreg`,
		page:        233,
		description: "Maqam Ushshak",
		tones: expectCount(7, notesFromSteps(
			[]float64{204, 408, 498, 702, 906, 996, 1200},
			[]float64{204, 204, 90, 204, 204, 90, 204},
		)),
	},
	{
		key:         "xen18_darreg_djami_nawa",
		author:      authorDarreg,
		issue:       "xen18",
		title:       `Abdurakhman Djami's "Treatise on Music", translated from the Russian by Ivor Darreg`,
		page:        233,
		description: "Maqam Nawa",
		tones: expectCount(7, notesFromSteps(
			[]float64{204, 294, 498, 702, 792, 996, 1200},
			[]float64{204, 90, 204, 204, 90, 204, 204},
		)),
	},
	{
		key:         "xen18_mitchell_fractal_1",
		author:      authorMitchell,
		issue:       "xen18",
		title:       "Fractal Tone Monochord Octave",
		page:        245,
		description: "Geordan's Scale, by eyeball",
		tones: expectCount(10, monochord([]float64{
			100.0, 96.70, 90.35, 83.82, 77.40, 70.71, 66.15, 61.45, 57.05, 52.45, 50.0,
		})),
	},
	{
		key:         "xen18_mitchell_fractal_2",
		author:      authorMitchell,
		issue:       "xen18",
		title:       "Fractal Tone Monochord Octave",
		page:        245,
		description: "Geordan's Scale, Erv Wilson's calculation",
		tones: expectCount(10, monochord([]float64{
			100.0, 96.75, 90.27, 83.79, 77.31, 70.83, 66.20, 61.57, 56.94, 52.31, 50.0,
		})),
	},
}
