package tetrachord

import "math/big"

// characteristicInterval maps each classical genus to the interval
// that defines it.
var characteristicInterval = map[string]*big.Rat{
	"H1": q(13, 10),
	"H2": q(35, 27),
	"H3": q(22, 17),
	"H4": q(128, 99),
	"H5": q(31, 24),
	"H6": q(40, 31),
	"H7": q(58, 45),
	"H8": q(9, 7),
	"H9": q(104, 81),
	"H10": q(50, 39),
	"H11": q(32, 25),
	"E1": q(23, 18),
	"E2": q(88, 69),
	"E3": q(51, 40),
	"E4": q(14, 11),
	"E5": q(80, 63),
	"E6": q(33, 26),
	"E7": q(19, 15),
	"E8": q(81, 64),
	"E9": q(24, 19),
	"E10": q(34, 27),
	"E11": q(113, 90),
	"E12": q(64, 51),
	"E13": q(5, 4),
	"E14": q(8192, 6561),
	"E15": q(56, 45),
	"E16": q(41, 33),
	"C1": q(36, 29),
	"C2": q(26, 21),
	"C3": q(21, 17),
	"C4": q(100, 81),
	"C5": q(37, 30),
	"C6": q(16, 13),
	"C7": q(27, 22),
	"C8": q(11, 9),
	"C9": q(39, 32),
	"C10": q(28, 23),
	"C11": q(17, 14),
	"C12": q(40, 33),
	"C13": q(29, 24),
	"C14": q(6, 5),
	"C15": q(25, 21),
	"C16": q(19, 16),
	"C17": q(32, 27),
	"C18": q(45, 38),
	"C19": q(13, 11),
	"C20": q(33, 28),
	"C21": q(20, 17),
	"C22": q(27, 23),
	"C23": q(75, 64),
	"C24": q(7, 6),
	"C25": q(136, 117),
	"C26": q(36, 31),
	"C27": q(80, 69),
	"C28": q(22, 19),
	"C29": q(52, 45),
	"D1": q(15, 13),
	"D2": q(38, 33),
	"D3": q(23, 20),
	"D4": q(31, 27),
	"D5": q(39, 34),
	"D6": q(8, 7),
	"D7": q(256, 225),
	"D8": q(25, 22),
	"D9": q(92, 81),
	"D10": q(76, 67),
	"D11": q(17, 15),
	"D12": q(112, 99),
	"D13": q(44, 39),
	"D14": q(152, 135),
	"D15": q(9, 8),
	"D16": q(160, 143),
	"D17": q(10, 9),
}

// catalog is the full Divisions of the Tetrachord catalog, in the
// book's published order.
var catalog = []Entry{
	{Index: 1, Genus: "H1", Kind: KindRational, Steps: []Step{r(80, 79), r(79, 78), r(13, 10)}},
	{Index: 2, Genus: "H1", Kind: KindRational, Steps: []Step{r(60, 59), r(118, 117), r(13, 10)}, Comment: "Originally printed as 60/49 * 118/117 * 13/10"},
	{Index: 3, Genus: "H1", Kind: KindRational, Steps: []Step{r(120, 119), r(119, 117), r(13, 10)}},
	{Index: 4, Genus: "H1", Kind: KindRational, Steps: []Step{r(100, 99), r(66, 65), r(13, 10)}, Reference: "Wilson"},
	{Index: 5, Genus: "H2", Kind: KindRational, Steps: []Step{r(72, 71), r(71, 70), r(35, 27)}},
	{Index: 6, Genus: "H2", Kind: KindRational, Steps: []Step{r(108, 107), r(107, 105), r(35, 27)}},
	{Index: 7, Genus: "H2", Kind: KindRational, Steps: []Step{r(54, 53), r(106, 105), r(35, 27)}},
	{Index: 8, Genus: "H2", Kind: KindRational, Steps: []Step{r(64, 63), r(81, 80), r(35, 27)}},
	{Index: 9, Genus: "H3", Kind: KindRational, Steps: []Step{r(68, 67), r(67, 66), r(22, 17)}},
	{Index: 10, Genus: "H3", Kind: KindRational, Steps: []Step{r(51, 50), r(100, 99), r(22, 17)}},
	{Index: 11, Genus: "H3", Kind: KindRational, Steps: []Step{r(102, 101), r(101, 99), r(22, 17)}},
	{Index: 12, Genus: "H3", Kind: KindRational, Steps: []Step{r(85, 84), r(56, 55), r(22, 17)}, Reference: "Wilson"},
	{Index: 13, Genus: "H4", Kind: KindRational, Steps: []Step{r(66, 65), r(65, 64), r(128, 99)}},
	{Index: 14, Genus: "H4", Kind: KindRational, Steps: []Step{r(99, 98), r(49, 48), r(128, 99)}},
	{Index: 15, Genus: "H4", Kind: KindRational, Steps: []Step{r(99, 97), r(97, 96), r(128, 99)}},
	{Index: 16, Genus: "H5", Kind: KindRational, Steps: []Step{r(64, 63), r(63, 62), r(31, 24)}},
	{Index: 17, Genus: "H5", Kind: KindRational, Steps: []Step{r(96, 95), r(95, 93), r(31, 24)}},
	{Index: 18, Genus: "H5", Kind: KindRational, Steps: []Step{r(48, 47), r(94, 93), r(31, 24)}},
	{Index: 19, Genus: "H6", Kind: KindRational, Steps: []Step{r(62, 61), r(61, 60), r(40, 31)}},
	{Index: 20, Genus: "H6", Kind: KindRational, Steps: []Step{r(93, 92), r(46, 45), r(40, 31)}},
	{Index: 21, Genus: "H6", Kind: KindRational, Steps: []Step{r(93, 91), r(91, 90), r(40, 31)}},
	{Index: 22, Genus: "H7", Kind: KindRational, Steps: []Step{r(60, 59), r(59, 58), r(58, 45)}},
	{Index: 23, Genus: "H7", Kind: KindRational, Steps: []Step{r(90, 89), r(89, 87), r(58, 45)}},
	{Index: 24, Genus: "H7", Kind: KindRational, Steps: []Step{r(45, 44), r(88, 87), r(58, 45)}},
	{Index: 25, Genus: "H7", Kind: KindRational, Steps: []Step{r(120, 119), r(119, 116), r(58, 45)}},
	{Index: 26, Genus: "H8", Kind: KindRational, Steps: []Step{r(56, 55), r(55, 54), r(9, 7)}, Reference: "Wilson"},
	{Index: 27, Genus: "H8", Kind: KindRational, Steps: []Step{r(42, 41), r(82, 81), r(9, 7)}},
	{Index: 28, Genus: "H8", Kind: KindRational, Steps: []Step{r(84, 83), r(83, 81), r(9, 7)}},
	{Index: 29, Genus: "H8", Kind: KindRational, Steps: []Step{r(64, 63), r(49, 48), r(9, 7)}},
	{Index: 30, Genus: "H8", Kind: KindRational, Steps: []Step{r(70, 69), r(46, 45), r(9, 7)}},
	{Index: 31, Genus: "H8", Kind: KindRational, Steps: []Step{r(40, 39), r(91, 90), r(9, 7)}},
	{Index: 32, Genus: "H8", Kind: KindRational, Steps: []Step{r(112, 111), r(37, 36), r(9, 7)}},
	{Index: 33, Genus: "H8", Kind: KindRational, Steps: []Step{r(81, 80), r(2240, 2187), r(9, 7)}},
	{Index: 34, Genus: "H8", Kind: KindRational, Steps: []Step{r(9, 7), r(119, 117), r(52, 51)}},
	{Index: 35, Genus: "H9", Kind: KindRational, Steps: []Step{r(54, 53), r(53, 52), r(104, 81)}},
	{Index: 36, Genus: "H9", Kind: KindRational, Steps: []Step{r(81, 79), r(79, 78), r(104, 81)}},
	{Index: 37, Genus: "H9", Kind: KindRational, Steps: []Step{r(81, 80), r(40, 39), r(104, 81)}},
	{Index: 38, Genus: "H10", Kind: KindRational, Steps: []Step{r(52, 51), r(51, 50), r(50, 39)}},
	{Index: 39, Genus: "H10", Kind: KindRational, Steps: []Step{r(39, 38), r(76, 75), r(50, 39)}},
	{Index: 40, Genus: "H10", Kind: KindRational, Steps: []Step{r(78, 77), r(77, 75), r(50, 39)}},
	{Index: 41, Genus: "H11", Kind: KindRational, Steps: []Step{r(50, 49), r(49, 48), r(32, 25)}},
	{Index: 42, Genus: "H11", Kind: KindRational, Steps: []Step{r(75, 73), r(73, 72), r(32, 25)}},
	{Index: 43, Genus: "H11", Kind: KindRational, Steps: []Step{r(75, 74), r(37, 36), r(32, 25)}},
	{Index: 44, Genus: "E1", Kind: KindRational, Steps: []Step{r(48, 47), r(47, 46), r(23, 18)}, Reference: "Schlesinger"},
	{Index: 45, Genus: "E1", Kind: KindRational, Steps: []Step{r(36, 35), r(70, 69), r(23, 18)}, Reference: "Wilson"},
	{Index: 46, Genus: "E1", Kind: KindRational, Steps: []Step{r(72, 71), r(71, 69), r(23, 18)}},
	{Index: 47, Genus: "E1", Kind: KindRational, Steps: []Step{r(30, 29), r(116, 115), r(23, 18)}, Reference: "Wilson"},
	{Index: 48, Genus: "E1", Kind: KindRational, Steps: []Step{r(60, 59), r(118, 115), r(23, 18)}},
	{Index: 49, Genus: "E2", Kind: KindRational, Steps: []Step{r(46, 45), r(45, 44), r(88, 69)}},
	{Index: 50, Genus: "E2", Kind: KindRational, Steps: []Step{r(69, 67), r(67, 66), r(88, 69)}},
	{Index: 51, Genus: "E2", Kind: KindRational, Steps: []Step{r(69, 68), r(34, 33), r(88, 69)}},
	{Index: 52, Genus: "E3", Kind: KindRational, Steps: []Step{r(320, 313), r(313, 306), r(51, 40)}},
	{Index: 53, Genus: "E3", Kind: KindRational, Steps: []Step{r(480, 473), r(473, 459), r(51, 40)}},
	{Index: 54, Genus: "E3", Kind: KindRational, Steps: []Step{r(240, 233), r(466, 459), r(51, 40)}},
	{Index: 55, Genus: "E4", Kind: KindRational, Steps: []Step{r(44, 43), r(43, 42), r(14, 11)}},
	{Index: 56, Genus: "E4", Kind: KindRational, Steps: []Step{r(33, 32), r(64, 63), r(14, 11)}},
	{Index: 57, Genus: "E4", Kind: KindRational, Steps: []Step{r(66, 65), r(65, 63), r(14, 11)}},
	{Index: 58, Genus: "E4", Kind: KindRational, Steps: []Step{r(88, 87), r(29, 28), r(14, 11)}},
	{Index: 59, Genus: "E4", Kind: KindRational, Steps: []Step{r(36, 35), r(55, 54), r(14, 11)}},
	{Index: 60, Genus: "E4", Kind: KindRational, Steps: []Step{r(50, 49), r(77, 75), r(14, 11)}},
	{Index: 61, Genus: "E4", Kind: KindRational, Steps: []Step{r(14, 11), r(143, 140), r(40, 39)}},
	{Index: 62, Genus: "E5", Kind: KindRational, Steps: []Step{r(42, 41), r(41, 40), r(80, 63)}},
	{Index: 63, Genus: "E5", Kind: KindRational, Steps: []Step{r(63, 61), r(61, 60), r(80, 63)}},
	{Index: 64, Genus: "E5", Kind: KindRational, Steps: []Step{r(63, 62), r(31, 30), r(80, 63)}},
	{Index: 65, Genus: "E6", Kind: KindRational, Steps: []Step{r(208, 203), r(203, 198), r(33, 26)}},
	{Index: 66, Genus: "E6", Kind: KindRational, Steps: []Step{r(312, 307), r(307, 297), r(33, 26)}},
	{Index: 67, Genus: "E6", Kind: KindRational, Steps: []Step{r(312, 302), r(302, 297), r(33, 26)}},
	{Index: 68, Genus: "E6", Kind: KindRational, Steps: []Step{r(52, 51), r(34, 33), r(33, 26)}},
	{Index: 69, Genus: "E6", Kind: KindRational, Steps: []Step{r(26, 25), r(100, 99), r(33, 26)}},
	{Index: 70, Genus: "E6", Kind: KindRational, Steps: []Step{r(78, 77), r(28, 27), r(33, 26)}},
	{Index: 71, Genus: "E7", Kind: KindRational, Steps: []Step{r(40, 39), r(39, 38), r(19, 15)}, Reference: "Eratosthenes"},
	{Index: 72, Genus: "E7", Kind: KindRational, Steps: []Step{r(30, 29), r(58, 57), r(19, 15)}},
	{Index: 73, Genus: "E7", Kind: KindRational, Steps: []Step{r(60, 59), r(59, 57), r(19, 15)}},
	{Index: 74, Genus: "E7", Kind: KindRational, Steps: []Step{r(28, 27), r(135, 133), r(19, 15)}},
	{Index: 75, Genus: "E8", Kind: KindRational, Steps: []Step{r(512, 499), r(499, 486), r(81, 64)}, Reference: "Boethius"},
	{Index: 76, Genus: "E8", Kind: KindRational, Steps: []Step{r(384, 371), r(742, 729), r(81, 64)}},
	{Index: 77, Genus: "E8", Kind: KindRational, Steps: []Step{r(768, 755), r(755, 729), r(81, 64)}},
	{Index: 78, Genus: "E8", Kind: KindRational, Steps: []Step{r(40, 39), r(416, 405), r(81, 64)}},
	{Index: 79, Genus: "E8", Kind: KindRational, Steps: []Step{r(128, 125), r(250, 243), r(81, 64)}, Reference: "Euler"},
	{Index: 80, Genus: "E8", Kind: KindRational, Steps: []Step{r(64, 63), r(28, 27), r(81, 64)}, Reference: "Wilson"},
	{Index: 81, Genus: "E8", Kind: KindRational, Steps: []Step{r(282429536481, 274877906944), r(70368744177664, 68630377364883), r(81, 64)}},
	{Index: 82, Genus: "E8", Kind: KindRational, Steps: []Step{r(36, 35), r(2240, 2187), r(81, 64)}},
	{Index: 83, Genus: "E9", Kind: KindRational, Steps: []Step{r(38, 37), r(37, 36), r(24, 19)}},
	{Index: 84, Genus: "E9", Kind: KindRational, Steps: []Step{r(57, 55), r(55, 54), r(24, 19)}},
	{Index: 85, Genus: "E9", Kind: KindRational, Steps: []Step{r(57, 56), r(28, 27), r(24, 19)}, Reference: "Wilson"},
	{Index: 86, Genus: "E9", Kind: KindRational, Steps: []Step{r(76, 75), r(25, 24), r(24, 19)}},
	{Index: 87, Genus: "E9", Kind: KindRational, Steps: []Step{r(40, 39), r(247, 240), r(24, 19)}, Comment: "Originally printed as 40/39 * 117/95 * 24/19"},
	{Index: 88, Genus: "E10", Kind: KindRational, Steps: []Step{r(36, 35), r(35, 34), r(34, 27)}},
	{Index: 89, Genus: "E10", Kind: KindRational, Steps: []Step{r(27, 26), r(52, 51), r(34, 27)}},
	{Index: 90, Genus: "E10", Kind: KindRational, Steps: []Step{r(54, 53), r(53, 51), r(34, 27)}},
	{Index: 91, Genus: "E10", Kind: KindRational, Steps: []Step{r(24, 23), r(69, 68), r(34, 27)}},
	{Index: 92, Genus: "E11", Kind: KindRational, Steps: []Step{r(240, 233), r(233, 226), r(113, 90)}},
	{Index: 93, Genus: "E11", Kind: KindRational, Steps: []Step{r(180, 173), r(346, 339), r(113, 90)}},
	{Index: 94, Genus: "E11", Kind: KindRational, Steps: []Step{r(360, 353), r(353, 339), r(113, 90)}},
	{Index: 95, Genus: "E11", Kind: KindRational, Steps: []Step{r(30, 29), r(116, 113), r(113, 90)}},
	{Index: 96, Genus: "E11", Kind: KindRational, Steps: []Step{r(40, 39), r(117, 113), r(113, 90)}},
	{Index: 97, Genus: "E11", Kind: KindRational, Steps: []Step{r(60, 59), r(118, 113), r(113, 90)}},
	{Index: 98, Genus: "E12", Kind: KindRational, Steps: []Step{r(34, 33), r(33, 32), r(64, 51)}},
	{Index: 99, Genus: "E12", Kind: KindRational, Steps: []Step{r(51, 50), r(25, 24), r(64, 51)}},
	{Index: 100, Genus: "E12", Kind: KindRational, Steps: []Step{r(49, 48), r(51, 49), r(64, 51)}},
	{Index: 101, Genus: "E12", Kind: KindRational, Steps: []Step{r(68, 65), r(65, 64), r(64, 51)}},
	{Index: 102, Genus: "E12", Kind: KindRational, Steps: []Step{r(68, 67), r(67, 64), r(64, 51)}},
	{Index: 103, Genus: "E13", Kind: KindRational, Steps: []Step{r(32, 31), r(31, 30), r(5, 4)}, Reference: "Didymos"},
	{Index: 104, Genus: "E13", Kind: KindRational, Steps: []Step{r(46, 45), r(24, 23), r(5, 4)}, Reference: "Ptolemy"},
	{Index: 105, Genus: "E13", Kind: KindRational, Steps: []Step{r(48, 47), r(47, 45), r(5, 4)}},
	{Index: 106, Genus: "E13", Kind: KindRational, Steps: []Step{r(28, 27), r(36, 35), r(5, 4)}, Reference: "Archytas"},
	{Index: 107, Genus: "E13", Kind: KindRational, Steps: []Step{r(56, 55), r(22, 21), r(5, 4)}, Reference: "Ptolemy?"},
	{Index: 108, Genus: "E13", Kind: KindRational, Steps: []Step{r(40, 39), r(26, 25), r(5, 4)}, Reference: "Avicenna"},
	{Index: 109, Genus: "E13", Kind: KindRational, Steps: []Step{r(25, 24), r(128, 125), r(5, 4)}, Reference: "Salinas"},
	{Index: 110, Genus: "E13", Kind: KindRational, Steps: []Step{r(21, 20), r(64, 63), r(5, 4)}, Reference: "Pachymeres"},
	{Index: 111, Genus: "E13", Kind: KindRational, Steps: []Step{r(256, 243), r(81, 80), r(5, 4)}, Reference: "Fox-Strangways?"},
	{Index: 112, Genus: "E13", Kind: KindRational, Steps: []Step{r(76, 75), r(20, 19), r(5, 4)}},
	{Index: 113, Genus: "E13", Kind: KindRational, Steps: []Step{r(96, 95), r(19, 18), r(5, 4)}, Reference: "Wilson"},
	{Index: 114, Genus: "E13", Kind: KindRational, Steps: []Step{r(136, 135), r(18, 17), r(5, 4)}, Reference: "Hofmann"},
	{Index: 115, Genus: "E13", Kind: KindRational, Steps: []Step{r(256, 255), r(17, 16), r(5, 4)}, Reference: "Hofmann"},
	{Index: 116, Genus: "E13", Kind: KindRational, Steps: []Step{r(68, 65), r(5, 4), r(52, 51)}},
	{Index: 117, Genus: "E14", Kind: KindRational, Steps: []Step{r(4374, 4235), r(4235, 4096), r(8192, 6561)}},
	{Index: 118, Genus: "E14", Kind: KindRational, Steps: []Step{r(6561, 6283), r(6283, 6144), r(8192, 6561)}},
	{Index: 119, Genus: "E14", Kind: KindRational, Steps: []Step{r(6561, 6422), r(3211, 3072), r(8192, 6561)}},
	{Index: 120, Genus: "E14", Kind: KindRational, Steps: []Step{r(282429536481, 274877906944), r(134217728, 129140163), r(8192, 6561)}},
	{Index: 121, Genus: "E15", Kind: KindRational, Steps: []Step{r(30, 29), r(29, 28), r(56, 45)}, Reference: "Ptolemy"},
	{Index: 122, Genus: "E15", Kind: KindRational, Steps: []Step{r(45, 43), r(43, 42), r(56, 45)}},
	{Index: 123, Genus: "E15", Kind: KindRational, Steps: []Step{r(45, 44), r(22, 21), r(56, 45)}},
	{Index: 124, Genus: "E15", Kind: KindRational, Steps: []Step{r(25, 24), r(36, 35), r(56, 45)}},
	{Index: 125, Genus: "E15", Kind: KindRational, Steps: []Step{r(80, 77), r(33, 32), r(56, 45)}},
	{Index: 126, Genus: "E15", Kind: KindRational, Steps: []Step{r(60, 59), r(59, 56), r(56, 45)}},
	{Index: 127, Genus: "E15", Kind: KindRational, Steps: []Step{r(40, 39), r(117, 112), r(56, 45)}},
	{Index: 128, Genus: "E15", Kind: KindRational, Steps: []Step{r(26, 25), r(375, 364), r(56, 45)}},
	{Index: 129, Genus: "E16", Kind: KindRational, Steps: []Step{r(88, 85), r(85, 82), r(41, 33)}},
	{Index: 130, Genus: "E16", Kind: KindRational, Steps: []Step{r(42, 41), r(22, 21), r(41, 33)}},
	{Index: 131, Genus: "E16", Kind: KindRational, Steps: []Step{r(44, 43), r(43, 41), r(41, 33)}},
	{Index: 132, Genus: "C1", Kind: KindRational, Steps: []Step{r(29, 28), r(28, 27), r(36, 29)}},
	{Index: 133, Genus: "C1", Kind: KindRational, Steps: []Step{r(87, 85), r(85, 81), r(36, 29)}},
	{Index: 134, Genus: "C1", Kind: KindRational, Steps: []Step{r(87, 83), r(83, 81), r(36, 29)}},
	{Index: 135, Genus: "C2", Kind: KindRational, Steps: []Step{r(28, 27), r(27, 26), r(26, 21)}, Reference: "Schlesinger"},
	{Index: 136, Genus: "C2", Kind: KindRational, Steps: []Step{r(21, 20), r(40, 39), r(26, 21)}},
	{Index: 137, Genus: "C2", Kind: KindRational, Steps: []Step{r(42, 41), r(41, 39), r(26, 21)}},
	{Index: 138, Genus: "C2", Kind: KindRational, Steps: []Step{r(24, 23), r(161, 156), r(26, 21)}},
	{Index: 139, Genus: "C3", Kind: KindRational, Steps: []Step{r(136, 131), r(131, 126), r(21, 17)}},
	{Index: 140, Genus: "C3", Kind: KindRational, Steps: []Step{r(102, 97), r(194, 189), r(21, 17)}},
	{Index: 141, Genus: "C3", Kind: KindRational, Steps: []Step{r(204, 199), r(199, 189), r(21, 17)}},
	{Index: 142, Genus: "C3", Kind: KindRational, Steps: []Step{r(64, 63), r(17, 16), r(21, 17)}},
	{Index: 143, Genus: "C3", Kind: KindRational, Steps: []Step{r(34, 33), r(22, 21), r(21, 17)}},
	{Index: 144, Genus: "C3", Kind: KindRational, Steps: []Step{r(40, 39), r(221, 210), r(21, 17)}},
	{Index: 145, Genus: "C3", Kind: KindRational, Steps: []Step{r(24, 23), r(391, 378), r(21, 17)}},
	{Index: 146, Genus: "C3", Kind: KindRational, Steps: []Step{r(28, 27), r(51, 49), r(21, 17)}},
	{Index: 147, Genus: "C4", Kind: KindRational, Steps: []Step{r(27, 26), r(26, 25), r(100, 81)}},
	{Index: 148, Genus: "C4", Kind: KindRational, Steps: []Step{r(81, 77), r(77, 75), r(100, 81)}},
	{Index: 149, Genus: "C4", Kind: KindRational, Steps: []Step{r(81, 79), r(79, 75), r(100, 81)}},
	{Index: 150, Genus: "C4", Kind: KindRational, Steps: []Step{r(81, 80), r(16, 15), r(100, 81)}},
	{Index: 151, Genus: "C4", Kind: KindRational, Steps: []Step{r(51, 50), r(18, 17), r(100, 81)}},
	{Index: 152, Genus: "C4", Kind: KindRational, Steps: []Step{r(36, 35), r(21, 20), r(100, 81)}},
	{Index: 153, Genus: "C4", Kind: KindRational, Steps: []Step{r(40, 39), r(1053, 1000), r(100, 81)}},
	{Index: 154, Genus: "C4", Kind: KindRational, Steps: []Step{r(135, 128), r(128, 125), r(100, 81)}, Reference: "Daniélou"},
	{Index: 155, Genus: "C4", Kind: KindRational, Steps: []Step{r(24, 23), r(207, 200), r(100, 81)}},
	{Index: 156, Genus: "C5", Kind: KindRational, Steps: []Step{r(80, 77), r(77, 74), r(37, 30)}, Reference: "Ptolemy"},
	{Index: 157, Genus: "C5", Kind: KindRational, Steps: []Step{r(20, 19), r(38, 37), r(37, 30)}},
	{Index: 158, Genus: "C5", Kind: KindRational, Steps: []Step{r(40, 39), r(39, 37), r(37, 30)}},
	{Index: 159, Genus: "C5", Kind: KindRational, Steps: []Step{r(30, 29), r(116, 111), r(37, 30)}},
	{Index: 160, Genus: "C5", Kind: KindRational, Steps: []Step{r(60, 59), r(118, 111), r(37, 30)}},
	{Index: 161, Genus: "C6", Kind: KindRational, Steps: []Step{r(26, 25), r(25, 24), r(16, 13)}},
	{Index: 162, Genus: "C6", Kind: KindRational, Steps: []Step{r(39, 37), r(37, 36), r(16, 13)}},
	{Index: 163, Genus: "C6", Kind: KindRational, Steps: []Step{r(39, 38), r(19, 18), r(16, 13)}},
	{Index: 164, Genus: "C6", Kind: KindRational, Steps: []Step{r(65, 64), r(16, 15), r(16, 13)}},
	{Index: 165, Genus: "C6", Kind: KindRational, Steps: []Step{r(52, 51), r(17, 16), r(16, 13)}},
	{Index: 166, Genus: "C6", Kind: KindRational, Steps: []Step{r(40, 39), r(169, 160), r(16, 13)}},
	{Index: 167, Genus: "C6", Kind: KindRational, Steps: []Step{r(28, 27), r(117, 112), r(16, 13)}},
	{Index: 168, Genus: "C6", Kind: KindRational, Steps: []Step{r(169, 168), r(14, 13), r(16, 13)}},
	{Index: 169, Genus: "C6", Kind: KindRational, Steps: []Step{r(22, 21), r(91, 88), r(16, 13)}},
	{Index: 170, Genus: "C7", Kind: KindRational, Steps: []Step{r(176, 169), r(169, 162), r(27, 22)}},
	{Index: 171, Genus: "C7", Kind: KindRational, Steps: []Step{r(132, 125), r(250, 243), r(27, 22)}},
	{Index: 172, Genus: "C7", Kind: KindRational, Steps: []Step{r(264, 257), r(257, 243), r(27, 22)}},
	{Index: 173, Genus: "C7", Kind: KindRational, Steps: []Step{r(28, 27), r(22, 21), r(27, 22)}},
	{Index: 174, Genus: "C7", Kind: KindRational, Steps: []Step{r(55, 54), r(16, 15), r(27, 22)}},
	{Index: 175, Genus: "C7", Kind: KindRational, Steps: []Step{r(40, 39), r(143, 135), r(27, 22)}},
	{Index: 176, Genus: "C8", Kind: KindRational, Steps: []Step{r(24, 23), r(23, 22), r(11, 9)}, Reference: "Winnington-Ingram"},
	{Index: 177, Genus: "C8", Kind: KindRational, Steps: []Step{r(18, 17), r(34, 33), r(11, 9)}},
	{Index: 178, Genus: "C8", Kind: KindRational, Steps: []Step{r(36, 35), r(35, 33), r(11, 9)}},
	{Index: 179, Genus: "C8", Kind: KindRational, Steps: []Step{r(45, 44), r(16, 15), r(11, 9)}},
	{Index: 180, Genus: "C8", Kind: KindRational, Steps: []Step{r(56, 55), r(15, 14), r(11, 9)}},
	{Index: 181, Genus: "C8", Kind: KindRational, Steps: []Step{r(78, 77), r(14, 13), r(11, 9)}},
	{Index: 182, Genus: "C8", Kind: KindRational, Steps: []Step{r(20, 19), r(57, 55), r(11, 9)}},
	{Index: 183, Genus: "C8", Kind: KindRational, Steps: []Step{r(30, 29), r(58, 55), r(11, 9)}},
	{Index: 184, Genus: "C8", Kind: KindRational, Steps: []Step{r(28, 27), r(81, 77), r(11, 9)}},
	{Index: 185, Genus: "C8", Kind: KindRational, Steps: []Step{r(40, 39), r(117, 110), r(11, 9)}},
	{Index: 186, Genus: "C9", Kind: KindRational, Steps: []Step{r(256, 245), r(245, 234), r(39, 32)}},
	{Index: 187, Genus: "C9", Kind: KindRational, Steps: []Step{r(384, 373), r(373, 351), r(39, 32)}},
	{Index: 188, Genus: "C9", Kind: KindRational, Steps: []Step{r(192, 181), r(362, 351), r(39, 32)}},
	{Index: 189, Genus: "C9", Kind: KindRational, Steps: []Step{r(64, 63), r(14, 13), r(39, 32)}},
	{Index: 190, Genus: "C10", Kind: KindRational, Steps: []Step{r(23, 22), r(22, 21), r(28, 23)}, Reference: "Wilson"},
	{Index: 191, Genus: "C10", Kind: KindRational, Steps: []Step{r(69, 65), r(65, 63), r(28, 23)}},
	{Index: 192, Genus: "C10", Kind: KindRational, Steps: []Step{r(69, 67), r(67, 63), r(28, 23)}},
	{Index: 193, Genus: "C10", Kind: KindRational, Steps: []Step{r(46, 45), r(15, 14), r(28, 23)}},
	{Index: 194, Genus: "C11", Kind: KindRational, Steps: []Step{r(112, 107), r(107, 102), r(17, 14)}},
	{Index: 195, Genus: "C11", Kind: KindRational, Steps: []Step{r(168, 158), r(158, 153), r(17, 14)}},
	{Index: 196, Genus: "C11", Kind: KindRational, Steps: []Step{r(168, 163), r(163, 153), r(17, 14)}},
	{Index: 197, Genus: "C11", Kind: KindRational, Steps: []Step{r(52, 51), r(14, 13), r(17, 14)}},
	{Index: 198, Genus: "C11", Kind: KindRational, Steps: []Step{r(28, 27), r(18, 17), r(17, 14)}},
	{Index: 199, Genus: "C11", Kind: KindRational, Steps: []Step{r(35, 34), r(16, 15), r(17, 14)}},
	{Index: 200, Genus: "C11", Kind: KindRational, Steps: []Step{r(40, 39), r(91, 85), r(17, 14)}},
	{Index: 201, Genus: "C11", Kind: KindRational, Steps: []Step{r(17, 14), r(56, 55), r(55, 51)}},
	{Index: 202, Genus: "C11", Kind: KindRational, Steps: []Step{r(17, 14), r(56, 53), r(53, 51)}},
	{Index: 203, Genus: "C12", Kind: KindRational, Steps: []Step{r(22, 21), r(21, 20), r(40, 33)}},
	{Index: 204, Genus: "C12", Kind: KindRational, Steps: []Step{r(33, 31), r(31, 30), r(40, 33)}, Comment: "Originally printed as 33/32 * 31/30 * 40/33"},
	{Index: 205, Genus: "C12", Kind: KindRational, Steps: []Step{r(33, 32), r(16, 15), r(40, 33)}},
	{Index: 206, Genus: "C12", Kind: KindRational, Steps: []Step{r(55, 54), r(27, 25), r(40, 33)}},
	{Index: 207, Genus: "C12", Kind: KindRational, Steps: []Step{r(66, 65), r(13, 12), r(40, 33)}},
	{Index: 208, Genus: "C12", Kind: KindRational, Steps: []Step{r(18, 17), r(187, 180), r(40, 33)}},
	{Index: 209, Genus: "C13", Kind: KindRational, Steps: []Step{r(64, 61), r(61, 58), r(29, 24)}},
	{Index: 210, Genus: "C13", Kind: KindRational, Steps: []Step{r(16, 15), r(30, 29), r(29, 24)}, Reference: "Schlesinger"},
	{Index: 211, Genus: "C13", Kind: KindRational, Steps: []Step{r(32, 31), r(31, 29), r(29, 24)}, Reference: "Schlesinger"},
	{Index: 212, Genus: "C14", Kind: KindRational, Steps: []Step{r(20, 19), r(19, 18), r(6, 5)}, Reference: "Eratosthenes"},
	{Index: 213, Genus: "C14", Kind: KindRational, Steps: []Step{r(28, 27), r(15, 14), r(6, 5)}, Reference: "Ptolemy"},
	{Index: 214, Genus: "C14", Kind: KindRational, Steps: []Step{r(30, 29), r(29, 27), r(6, 5)}},
	{Index: 215, Genus: "C14", Kind: KindRational, Steps: []Step{r(16, 15), r(25, 24), r(6, 5)}, Reference: "Didymos"},
	{Index: 216, Genus: "C14", Kind: KindRational, Steps: []Step{r(40, 39), r(13, 12), r(6, 5)}, Reference: "Barbour"},
	{Index: 217, Genus: "C14", Kind: KindRational, Steps: []Step{r(55, 54), r(12, 11), r(6, 5)}, Reference: "Barbour"},
	{Index: 218, Genus: "C14", Kind: KindRational, Steps: []Step{r(65, 63), r(14, 13), r(6, 5)}},
	{Index: 219, Genus: "C14", Kind: KindRational, Steps: []Step{r(22, 21), r(35, 33), r(6, 5)}},
	{Index: 220, Genus: "C14", Kind: KindRational, Steps: []Step{r(21, 20), r(200, 189), r(6, 5)}, Reference: "Perrett"},
	{Index: 221, Genus: "C14", Kind: KindRational, Steps: []Step{r(256, 243), r(6, 5), r(135, 128)}, Reference: "Xenakis"},
	{Index: 222, Genus: "C14", Kind: KindRational, Steps: []Step{r(60, 59), r(59, 54), r(6, 5)}},
	{Index: 223, Genus: "C14", Kind: KindRational, Steps: []Step{r(80, 77), r(77, 72), r(6, 5)}},
	{Index: 224, Genus: "C14", Kind: KindRational, Steps: []Step{r(24, 23), r(115, 108), r(6, 5)}},
	{Index: 225, Genus: "C14", Kind: KindRational, Steps: []Step{r(88, 81), r(45, 44), r(6, 5)}},
	{Index: 226, Genus: "C14", Kind: KindRational, Steps: []Step{r(46, 45), r(6, 5), r(25, 23)}},
	{Index: 227, Genus: "C14", Kind: KindRational, Steps: []Step{r(52, 51), r(85, 78), r(6, 5)}, Reference: "Wilson"},
	{Index: 228, Genus: "C14", Kind: KindRational, Steps: []Step{r(100, 99), r(11, 10), r(6, 5)}, Reference: "Hofmann"},
	{Index: 229, Genus: "C14", Kind: KindRational, Steps: []Step{r(34, 33), r(6, 5), r(55, 51)}},
	{Index: 230, Genus: "C14", Kind: KindRational, Steps: []Step{r(6, 5), r(35, 32), r(64, 63)}},
	{Index: 231, Genus: "C14", Kind: KindRational, Steps: []Step{r(6, 5), r(2240, 2187), r(243, 224)}},
	{Index: 232, Genus: "C15", Kind: KindRational, Steps: []Step{r(56, 53), r(53, 50), r(25, 21)}},
	{Index: 233, Genus: "C15", Kind: KindRational, Steps: []Step{r(14, 13), r(26, 25), r(25, 21)}},
	{Index: 234, Genus: "C15", Kind: KindRational, Steps: []Step{r(28, 27), r(27, 25), r(25, 21)}},
	{Index: 235, Genus: "C15", Kind: KindRational, Steps: []Step{r(21, 20), r(16, 15), r(25, 21)}, Reference: "Perrett"},
	{Index: 236, Genus: "C15", Kind: KindRational, Steps: []Step{r(40, 39), r(273, 250), r(25, 21)}},
	{Index: 237, Genus: "C16", Kind: KindRational, Steps: []Step{r(128, 121), r(121, 114), r(19, 16)}},
	{Index: 238, Genus: "C16", Kind: KindRational, Steps: []Step{r(96, 89), r(178, 171), r(19, 16)}},
	{Index: 239, Genus: "C16", Kind: KindRational, Steps: []Step{r(192, 185), r(185, 171), r(19, 16)}},
	{Index: 240, Genus: "C16", Kind: KindRational, Steps: []Step{r(20, 19), r(19, 16), r(16, 15)}, Reference: "Kornerup"},
	{Index: 241, Genus: "C16", Kind: KindRational, Steps: []Step{r(256, 243), r(81, 76), r(19, 16)}, Reference: "Boethius"},
	{Index: 242, Genus: "C16", Kind: KindRational, Steps: []Step{r(96, 95), r(10, 9), r(19, 16)}, Reference: "Wilson"},
	{Index: 243, Genus: "C16", Kind: KindRational, Steps: []Step{r(64, 63), r(21, 19), r(19, 16)}},
	{Index: 244, Genus: "C16", Kind: KindRational, Steps: []Step{r(40, 39), r(104, 95), r(19, 16)}},
	{Index: 245, Genus: "C17", Kind: KindRational, Steps: []Step{r(18, 17), r(17, 16), r(32, 27)}, Reference: "Aristides Quint."},
	{Index: 246, Genus: "C17", Kind: KindRational, Steps: []Step{r(27, 25), r(25, 24), r(32, 27)}},
	{Index: 247, Genus: "C17", Kind: KindRational, Steps: []Step{r(27, 26), r(13, 12), r(32, 27)}, Reference: "Barbour?"},
	{Index: 248, Genus: "C17", Kind: KindRational, Steps: []Step{r(28, 27), r(243, 224), r(32, 27)}, Reference: "Archytas"},
	{Index: 249, Genus: "C17", Kind: KindRational, Steps: []Step{r(256, 243), r(2187, 2048), r(32, 27)}, Reference: "Gaudentius"},
	{Index: 250, Genus: "C17", Kind: KindRational, Steps: []Step{r(81, 80), r(10, 9), r(32, 27)}, Reference: "Barbour?"},
	{Index: 251, Genus: "C17", Kind: KindRational, Steps: []Step{r(33, 32), r(12, 11), r(32, 27)}, Reference: "Barbour?"},
	{Index: 252, Genus: "C17", Kind: KindRational, Steps: []Step{r(45, 44), r(11, 10), r(32, 27)}, Reference: "Barbour?"},
	{Index: 253, Genus: "C17", Kind: KindRational, Steps: []Step{r(21, 20), r(15, 14), r(32, 27)}, Reference: "Perrett"},
	{Index: 254, Genus: "C17", Kind: KindRational, Steps: []Step{r(135, 128), r(16, 15), r(32, 27)}},
	{Index: 255, Genus: "C17", Kind: KindRational, Steps: []Step{r(36, 35), r(35, 32), r(32, 27)}, Reference: "Wilson"},
	{Index: 256, Genus: "C17", Kind: KindRational, Steps: []Step{r(49, 48), r(54, 49), r(32, 27)}, Reference: "Wilson"},
	{Index: 257, Genus: "C17", Kind: KindRational, Steps: []Step{r(243, 230), r(230, 216), r(32, 27)}, Reference: "Ps.-Philolaus?"},
	{Index: 258, Genus: "C17", Kind: KindRational, Steps: []Step{r(243, 229), r(229, 216), r(32, 27)}},
	{Index: 259, Genus: "C17", Kind: KindRational, Steps: []Step{r(20, 19), r(171, 160), r(32, 27)}},
	{Index: 260, Genus: "C17", Kind: KindRational, Steps: []Step{r(23, 22), r(99, 92), r(32, 27)}},
	{Index: 261, Genus: "C17", Kind: KindRational, Steps: []Step{r(24, 23), r(69, 64), r(32, 27)}},
	{Index: 262, Genus: "C17", Kind: KindRational, Steps: []Step{r(40, 39), r(351, 320), r(32, 27)}},
	{Index: 263, Genus: "C17", Kind: KindRational, Steps: []Step{r(14, 13), r(117, 112), r(32, 27)}},
	{Index: 264, Genus: "C18", Kind: KindRational, Steps: []Step{r(304, 287), r(287, 270), r(45, 38)}},
	{Index: 265, Genus: "C18", Kind: KindRational, Steps: []Step{r(456, 439), r(439, 405), r(45, 38)}},
	{Index: 266, Genus: "C18", Kind: KindRational, Steps: []Step{r(228, 211), r(422, 405), r(45, 38)}},
	{Index: 267, Genus: "C18", Kind: KindRational, Steps: []Step{r(19, 18), r(16, 15), r(45, 38)}},
	{Index: 268, Genus: "C18", Kind: KindRational, Steps: []Step{r(76, 75), r(10, 9), r(45, 38)}},
	{Index: 269, Genus: "C18", Kind: KindRational, Steps: []Step{r(38, 35), r(28, 27), r(45, 38)}},
	{Index: 270, Genus: "C19", Kind: KindRational, Steps: []Step{r(88, 83), r(83, 78), r(13, 11)}},
	{Index: 271, Genus: "C19", Kind: KindRational, Steps: []Step{r(66, 61), r(122, 117), r(13, 11)}},
	{Index: 272, Genus: "C19", Kind: KindRational, Steps: []Step{r(132, 127), r(127, 117), r(13, 11)}},
	{Index: 273, Genus: "C19", Kind: KindRational, Steps: []Step{r(14, 13), r(22, 21), r(13, 11)}},
	{Index: 274, Genus: "C19", Kind: KindRational, Steps: []Step{r(40, 39), r(11, 10), r(13, 11)}},
	{Index: 275, Genus: "C19", Kind: KindRational, Steps: []Step{r(66, 65), r(10, 9), r(13, 11)}, Reference: "Wilson"},
	{Index: 276, Genus: "C19", Kind: KindRational, Steps: []Step{r(27, 26), r(88, 81), r(13, 11)}},
	{Index: 277, Genus: "C19", Kind: KindRational, Steps: []Step{r(28, 27), r(99, 91), r(13, 11)}},
	{Index: 278, Genus: "C20", Kind: KindRational, Steps: []Step{r(224, 211), r(211, 198), r(33, 28)}},
	{Index: 279, Genus: "C20", Kind: KindRational, Steps: []Step{r(336, 323), r(323, 297), r(33, 28)}},
	{Index: 280, Genus: "C20", Kind: KindRational, Steps: []Step{r(168, 155), r(310, 297), r(33, 28)}},
	{Index: 281, Genus: "C20", Kind: KindRational, Steps: []Step{r(56, 55), r(10, 9), r(33, 28)}},
	{Index: 282, Genus: "C20", Kind: KindRational, Steps: []Step{r(16, 15), r(35, 33), r(33, 28)}, Comment: "Originally printed as 16/15 * 35/32 * 33/28"},
	{Index: 283, Genus: "C20", Kind: KindRational, Steps: []Step{r(34, 33), r(33, 28), r(56, 51)}},
	{Index: 284, Genus: "C21", Kind: KindRational, Steps: []Step{r(17, 16), r(16, 15), r(20, 17)}},
	{Index: 285, Genus: "C21", Kind: KindRational, Steps: []Step{r(51, 47), r(47, 45), r(20, 17)}},
	{Index: 286, Genus: "C21", Kind: KindRational, Steps: []Step{r(51, 49), r(49, 45), r(20, 17)}},
	{Index: 287, Genus: "C21", Kind: KindRational, Steps: []Step{r(34, 33), r(11, 10), r(20, 17)}},
	{Index: 288, Genus: "C21", Kind: KindRational, Steps: []Step{r(51, 50), r(10, 9), r(20, 17)}},
	{Index: 289, Genus: "C21", Kind: KindRational, Steps: []Step{r(40, 39), r(221, 200), r(20, 17)}},
	{Index: 290, Genus: "C21", Kind: KindRational, Steps: []Step{r(28, 27), r(153, 140), r(20, 17)}},
	{Index: 291, Genus: "C21", Kind: KindRational, Steps: []Step{r(21, 20), r(20, 17), r(68, 63)}},
	{Index: 292, Genus: "C21", Kind: KindRational, Steps: []Step{r(68, 65), r(13, 12), r(20, 17)}},
	{Index: 293, Genus: "C21", Kind: KindRational, Steps: []Step{r(34, 31), r(31, 30), r(20, 17)}},
	{Index: 294, Genus: "C21", Kind: KindRational, Steps: []Step{r(68, 61), r(61, 60), r(20, 17)}},
	{Index: 295, Genus: "C21", Kind: KindRational, Steps: []Step{r(68, 67), r(67, 57), r(19, 17)}},
	{Index: 296, Genus: "C21", Kind: KindRational, Steps: []Step{r(68, 67), r(67, 60), r(20, 17)}},
	{Index: 297, Genus: "C22", Kind: KindRational, Steps: []Step{r(184, 173), r(173, 162), r(27, 23)}},
	{Index: 298, Genus: "C22", Kind: KindRational, Steps: []Step{r(276, 265), r(265, 243), r(27, 23)}},
	{Index: 299, Genus: "C22", Kind: KindRational, Steps: []Step{r(138, 127), r(254, 243), r(27, 23)}, Comment: "Originally printed as 138/127 * 254/243 * 27/2"},
	{Index: 300, Genus: "C22", Kind: KindRational, Steps: []Step{r(28, 27), r(23, 21), r(27, 23)}},
	{Index: 301, Genus: "C22", Kind: KindRational, Steps: []Step{r(23, 22), r(88, 81), r(27, 23)}},
	{Index: 302, Genus: "C22", Kind: KindRational, Steps: []Step{r(46, 45), r(10, 9), r(27, 23)}},
	{Index: 303, Genus: "C23", Kind: KindRational, Steps: []Step{r(512, 481), r(481, 450), r(75, 64)}},
	{Index: 304, Genus: "C23", Kind: KindRational, Steps: []Step{r(768, 737), r(737, 675), r(75, 64)}},
	{Index: 305, Genus: "C23", Kind: KindRational, Steps: []Step{r(384, 353), r(706, 675), r(75, 64)}},
	{Index: 306, Genus: "C23", Kind: KindRational, Steps: []Step{r(16, 15), r(75, 64), r(16, 15)}, Reference: "Helmholtz"},
	{Index: 307, Genus: "C24", Kind: KindRational, Steps: []Step{r(16, 15), r(15, 14), r(7, 6)}, Reference: "Al-Farabi"},
	{Index: 308, Genus: "C24", Kind: KindRational, Steps: []Step{r(22, 21), r(12, 11), r(7, 6)}, Reference: "Ptolemy"},
	{Index: 309, Genus: "C24", Kind: KindRational, Steps: []Step{r(24, 23), r(23, 21), r(7, 6)}},
	{Index: 310, Genus: "C24", Kind: KindRational, Steps: []Step{r(20, 19), r(38, 35), r(7, 6)}, Reference: "Ptolemy"},
	{Index: 311, Genus: "C24", Kind: KindRational, Steps: []Step{r(10, 9), r(36, 35), r(7, 6)}, Reference: "Avicenna"},
	{Index: 312, Genus: "C24", Kind: KindRational, Steps: []Step{r(64, 63), r(9, 8), r(7, 6)}, Reference: "Barbour"},
	{Index: 313, Genus: "C24", Kind: KindRational, Steps: []Step{r(92, 91), r(26, 23), r(7, 6)}},
	{Index: 314, Genus: "C24", Kind: KindRational, Steps: []Step{r(256, 243), r(243, 224), r(7, 6)}, Reference: "Hipkins"},
	{Index: 315, Genus: "C24", Kind: KindRational, Steps: []Step{r(40, 39), r(39, 35), r(7, 6)}},
	{Index: 316, Genus: "C24", Kind: KindRational, Steps: []Step{r(18, 17), r(7, 6), r(68, 63)}},
	{Index: 317, Genus: "C24", Kind: KindRational, Steps: []Step{r(50, 49), r(7, 6), r(28, 25)}},
	{Index: 318, Genus: "C24", Kind: KindRational, Steps: []Step{r(14, 13), r(7, 6), r(52, 49)}},
	{Index: 319, Genus: "C24", Kind: KindRational, Steps: []Step{r(46, 45), r(180, 161), r(7, 6)}},
	{Index: 320, Genus: "C24", Kind: KindRational, Steps: []Step{r(28, 27), r(54, 49), r(7, 6)}},
	{Index: 321, Genus: "C24", Kind: KindRational, Steps: []Step{r(120, 113), r(113, 105), r(7, 6)}},
	{Index: 322, Genus: "C24", Kind: KindRational, Steps: []Step{r(60, 59), r(118, 105), r(7, 6)}},
	{Index: 323, Genus: "C24", Kind: KindRational, Steps: []Step{r(30, 29), r(116, 105), r(7, 6)}},
	{Index: 324, Genus: "C24", Kind: KindRational, Steps: []Step{r(88, 81), r(81, 77), r(7, 6)}},
	{Index: 325, Genus: "C24", Kind: KindRational, Steps: []Step{r(120, 119), r(17, 15), r(7, 6)}},
	{Index: 326, Genus: "C24", Kind: KindRational, Steps: []Step{r(27, 25), r(7, 6), r(200, 189)}},
	{Index: 327, Genus: "C24", Kind: KindRational, Steps: []Step{r(26, 25), r(7, 6), r(100, 91)}},
	{Index: 328, Genus: "C24", Kind: KindRational, Steps: []Step{r(7, 6), r(1024, 945), r(135, 128)}},
	{Index: 329, Genus: "C25", Kind: KindRational, Steps: []Step{r(78, 73), r(73, 68), r(136, 117)}},
	{Index: 330, Genus: "C25", Kind: KindRational, Steps: []Step{r(117, 112), r(56, 51), r(136, 117)}},
	{Index: 331, Genus: "C25", Kind: KindRational, Steps: []Step{r(117, 107), r(107, 102), r(136, 117)}},
	{Index: 332, Genus: "C25", Kind: KindRational, Steps: []Step{r(52, 51), r(9, 8), r(136, 117)}},
	{Index: 333, Genus: "C26", Kind: KindRational, Steps: []Step{r(31, 29), r(29, 27), r(36, 31)}},
	{Index: 334, Genus: "C26", Kind: KindRational, Steps: []Step{r(93, 89), r(89, 81), r(36, 31)}},
	{Index: 335, Genus: "C26", Kind: KindRational, Steps: []Step{r(93, 85), r(85, 81), r(36, 31)}},
	{Index: 336, Genus: "C27", Kind: KindRational, Steps: []Step{r(46, 43), r(43, 40), r(80, 69)}},
	{Index: 337, Genus: "C27", Kind: KindRational, Steps: []Step{r(23, 21), r(21, 20), r(80, 69)}},
	{Index: 338, Genus: "C27", Kind: KindRational, Steps: []Step{r(23, 22), r(11, 10), r(80, 69)}},
	{Index: 339, Genus: "C27", Kind: KindRational, Steps: []Step{r(46, 45), r(9, 8), r(80, 69)}},
	{Index: 340, Genus: "C28", Kind: KindRational, Steps: []Step{r(76, 71), r(71, 66), r(22, 19)}},
	{Index: 341, Genus: "C28", Kind: KindRational, Steps: []Step{r(57, 52), r(104, 99), r(22, 19)}},
	{Index: 342, Genus: "C28", Kind: KindRational, Steps: []Step{r(114, 109), r(109, 99), r(22, 19)}},
	{Index: 343, Genus: "C28", Kind: KindRational, Steps: []Step{r(19, 18), r(12, 11), r(22, 19)}, Reference: "Schlesinger"},
	{Index: 344, Genus: "C28", Kind: KindRational, Steps: []Step{r(34, 33), r(19, 17), r(22, 19)}},
	{Index: 345, Genus: "C28", Kind: KindRational, Steps: []Step{r(40, 39), r(247, 220), r(22, 19)}},
	{Index: 346, Genus: "C29", Kind: KindRational, Steps: []Step{r(15, 14), r(14, 13), r(52, 45)}},
	{Index: 347, Genus: "C29", Kind: KindRational, Steps: []Step{r(45, 41), r(41, 39), r(52, 45)}},
	{Index: 348, Genus: "C29", Kind: KindRational, Steps: []Step{r(45, 43), r(43, 39), r(52, 45)}},
	{Index: 349, Genus: "C29", Kind: KindRational, Steps: []Step{r(24, 23), r(115, 104), r(52, 45)}},
	{Index: 350, Genus: "C29", Kind: KindRational, Steps: []Step{r(40, 39), r(9, 8), r(52, 45)}},
	{Index: 351, Genus: "C29", Kind: KindRational, Steps: []Step{r(18, 17), r(85, 78), r(52, 45)}},
	{Index: 352, Genus: "C29", Kind: KindRational, Steps: []Step{r(45, 44), r(44, 39), r(52, 45)}},
	{Index: 353, Genus: "C29", Kind: KindRational, Steps: []Step{r(65, 63), r(189, 169), r(52, 45)}, Comment: "Originally printed as 65/63 * 28/25 * 52/45 - not obviously a typo"},
	{Index: 354, Genus: "C29", Kind: KindRational, Steps: []Step{r(55, 52), r(12, 11), r(52, 45)}},
	{Index: 355, Genus: "C29", Kind: KindRational, Steps: []Step{r(60, 59), r(59, 52), r(52, 45)}, Comment: "Originally printed as 60/59 * 59/45 * 52/45"},
	{Index: 356, Genus: "C29", Kind: KindRational, Steps: []Step{r(20, 19), r(52, 45), r(57, 52)}},
	{Index: 357, Genus: "C29", Kind: KindRational, Steps: []Step{r(27, 26), r(10, 9), r(52, 45)}},
	{Index: 358, Genus: "C29", Kind: KindRational, Steps: []Step{r(11, 10), r(150, 143), r(52, 45)}},
	{Index: 359, Genus: "D1", Kind: KindRational, Steps: []Step{r(104, 97), r(97, 90), r(15, 13)}},
	{Index: 360, Genus: "D1", Kind: KindRational, Steps: []Step{r(78, 71), r(142, 135), r(15, 13)}},
	{Index: 361, Genus: "D1", Kind: KindRational, Steps: []Step{r(156, 149), r(149, 135), r(15, 13)}},
	{Index: 362, Genus: "D1", Kind: KindRational, Steps: []Step{r(16, 15), r(15, 13), r(13, 12)}, Reference: "Schlesinger"},
	{Index: 363, Genus: "D1", Kind: KindRational, Steps: []Step{r(26, 25), r(10, 9), r(15, 13)}},
	{Index: 364, Genus: "D1", Kind: KindRational, Steps: []Step{r(256, 243), r(351, 320), r(15, 13)}},
	{Index: 365, Genus: "D1", Kind: KindRational, Steps: []Step{r(20, 19), r(247, 225), r(15, 13)}},
	{Index: 366, Genus: "D1", Kind: KindRational, Steps: []Step{r(11, 10), r(15, 13), r(104, 99)}},
	{Index: 367, Genus: "D1", Kind: KindRational, Steps: []Step{r(12, 11), r(15, 13), r(143, 135)}},
	{Index: 368, Genus: "D1", Kind: KindRational, Steps: []Step{r(46, 45), r(26, 23), r(15, 13)}},
	{Index: 369, Genus: "D1", Kind: KindRational, Steps: []Step{r(40, 39), r(169, 150), r(15, 13)}},
	{Index: 370, Genus: "D1", Kind: KindRational, Steps: []Step{r(28, 27), r(39, 35), r(15, 13)}},
	{Index: 371, Genus: "D1", Kind: KindRational, Steps: []Step{r(91, 90), r(8, 7), r(15, 13)}},
	{Index: 372, Genus: "D2", Kind: KindRational, Steps: []Step{r(44, 41), r(41, 38), r(38, 33)}},
	{Index: 373, Genus: "D2", Kind: KindRational, Steps: []Step{r(11, 10), r(20, 19), r(38, 33)}},
	{Index: 374, Genus: "D2", Kind: KindRational, Steps: []Step{r(22, 21), r(21, 19), r(38, 33)}},
	{Index: 375, Genus: "D3", Kind: KindRational, Steps: []Step{r(160, 149), r(149, 138), r(23, 20)}},
	{Index: 376, Genus: "D3", Kind: KindRational, Steps: []Step{r(120, 109), r(218, 207), r(23, 20)}},
	{Index: 377, Genus: "D3", Kind: KindRational, Steps: []Step{r(240, 229), r(229, 207), r(23, 20)}},
	{Index: 378, Genus: "D3", Kind: KindRational, Steps: []Step{r(8, 7), r(70, 69), r(23, 20)}},
	{Index: 379, Genus: "D3", Kind: KindRational, Steps: []Step{r(40, 39), r(26, 23), r(23, 20)}},
	{Index: 380, Genus: "D3", Kind: KindRational, Steps: []Step{r(24, 23), r(23, 20), r(10, 9)}, Reference: "Schlesinger"},
	{Index: 381, Genus: "D3", Kind: KindRational, Steps: []Step{r(28, 27), r(180, 161), r(23, 20)}},
	{Index: 382, Genus: "D4", Kind: KindRational, Steps: []Step{r(72, 67), r(67, 62), r(31, 27)}},
	{Index: 383, Genus: "D4", Kind: KindRational, Steps: []Step{r(108, 103), r(103, 93), r(31, 27)}},
	{Index: 384, Genus: "D4", Kind: KindRational, Steps: []Step{r(54, 49), r(98, 93), r(31, 27)}},
	{Index: 385, Genus: "D4", Kind: KindRational, Steps: []Step{r(32, 31), r(9, 8), r(31, 27)}},
	{Index: 386, Genus: "D5", Kind: KindRational, Steps: []Step{r(272, 253), r(253, 234), r(39, 34)}},
	{Index: 387, Genus: "D5", Kind: KindRational, Steps: []Step{r(408, 389), r(389, 351), r(39, 34)}},
	{Index: 388, Genus: "D5", Kind: KindRational, Steps: []Step{r(204, 185), r(370, 351), r(39, 34)}},
	{Index: 389, Genus: "D5", Kind: KindRational, Steps: []Step{r(40, 39), r(39, 34), r(17, 15)}},
	{Index: 390, Genus: "D6", Kind: KindRational, Steps: []Step{r(14, 13), r(13, 12), r(8, 7)}, Reference: "Avicenna"},
	{Index: 391, Genus: "D6", Kind: KindRational, Steps: []Step{r(19, 18), r(21, 19), r(8, 7)}, Reference: "Safiyu-d-Din"},
	{Index: 392, Genus: "D6", Kind: KindRational, Steps: []Step{r(21, 20), r(10, 9), r(8, 7)}, Reference: "Ptolemy"},
	{Index: 393, Genus: "D6", Kind: KindRational, Steps: []Step{r(28, 27), r(8, 7), r(9, 8)}, Reference: "Archytas"},
	{Index: 394, Genus: "D6", Kind: KindRational, Steps: []Step{r(49, 48), r(8, 7), r(8, 7)}, Reference: "Al-Farabi"},
	{Index: 395, Genus: "D6", Kind: KindRational, Steps: []Step{r(35, 33), r(11, 10), r(8, 7)}, Reference: "Avicenna"},
	{Index: 396, Genus: "D6", Kind: KindRational, Steps: []Step{r(77, 72), r(12, 11), r(8, 7)}, Reference: "Avicenna"},
	{Index: 397, Genus: "D6", Kind: KindRational, Steps: []Step{r(16, 15), r(35, 32), r(8, 7)}, Reference: "Vogel"},
	{Index: 398, Genus: "D6", Kind: KindRational, Steps: []Step{r(35, 34), r(17, 15), r(8, 7)}},
	{Index: 399, Genus: "D6", Kind: KindRational, Steps: []Step{r(25, 24), r(8, 7), r(28, 25)}},
	{Index: 400, Genus: "D6", Kind: KindRational, Steps: []Step{r(15, 14), r(8, 7), r(49, 45)}},
	{Index: 401, Genus: "D6", Kind: KindRational, Steps: []Step{r(40, 39), r(91, 80), r(8, 7)}},
	{Index: 402, Genus: "D6", Kind: KindRational, Steps: []Step{r(46, 45), r(105, 92), r(8, 7)}},
	{Index: 403, Genus: "D6", Kind: KindRational, Steps: []Step{r(18, 17), r(119, 108), r(8, 7)}},
	{Index: 404, Genus: "D6", Kind: KindRational, Steps: []Step{r(17, 16), r(8, 7), r(56, 51)}},
	{Index: 405, Genus: "D6", Kind: KindRational, Steps: []Step{r(34, 33), r(77, 68), r(8, 7)}},
	{Index: 406, Genus: "D6", Kind: KindRational, Steps: []Step{r(256, 243), r(567, 512), r(8, 7)}},
	{Index: 407, Genus: "D7", Kind: KindRational, Steps: []Step{r(150, 139), r(139, 128), r(256, 225)}},
	{Index: 408, Genus: "D7", Kind: KindRational, Steps: []Step{r(225, 214), r(107, 96), r(256, 225)}},
	{Index: 409, Genus: "D7", Kind: KindRational, Steps: []Step{r(225, 203), r(203, 192), r(256, 225)}},
	{Index: 410, Genus: "D7", Kind: KindRational, Steps: []Step{r(25, 24), r(9, 8), r(256, 225)}},
	{Index: 411, Genus: "D8", Kind: KindRational, Steps: []Step{r(176, 163), r(163, 150), r(25, 22)}},
	{Index: 412, Genus: "D8", Kind: KindRational, Steps: []Step{r(132, 119), r(238, 225), r(25, 22)}},
	{Index: 413, Genus: "D8", Kind: KindRational, Steps: []Step{r(264, 251), r(251, 225), r(25, 22)}},
	{Index: 414, Genus: "D8", Kind: KindRational, Steps: []Step{r(16, 15), r(11, 10), r(25, 22)}},
	{Index: 415, Genus: "D8", Kind: KindRational, Steps: []Step{r(88, 81), r(27, 25), r(25, 22)}},
	{Index: 416, Genus: "D8", Kind: KindRational, Steps: []Step{r(22, 21), r(25, 22), r(28, 25)}},
	{Index: 417, Genus: "D8", Kind: KindRational, Steps: []Step{r(28, 27), r(198, 175), r(25, 22)}},
	{Index: 418, Genus: "D8", Kind: KindRational, Steps: []Step{r(26, 25), r(44, 39), r(25, 22)}},
	{Index: 419, Genus: "D9", Kind: KindRational, Steps: []Step{r(27, 25), r(25, 23), r(92, 81)}},
	{Index: 420, Genus: "D9", Kind: KindRational, Steps: []Step{r(81, 77), r(77, 69), r(92, 81)}},
	{Index: 421, Genus: "D9", Kind: KindRational, Steps: []Step{r(81, 73), r(73, 69), r(92, 81)}},
	{Index: 422, Genus: "D9", Kind: KindRational, Steps: []Step{r(24, 23), r(9, 8), r(92, 81)}},
	{Index: 423, Genus: "D9", Kind: KindRational, Steps: []Step{r(27, 26), r(26, 23), r(92, 81)}},
	{Index: 424, Genus: "D10", Kind: KindRational, Steps: []Step{r(67, 62), r(62, 57), r(76, 67)}},
	{Index: 425, Genus: "D10", Kind: KindRational, Steps: []Step{r(201, 181), r(181, 171), r(76, 67)}},
	{Index: 426, Genus: "D10", Kind: KindRational, Steps: []Step{r(201, 191), r(191, 171), r(76, 67)}},
	{Index: 427, Genus: "D10", Kind: KindRational, Steps: []Step{r(256, 243), r(76, 67), r(5427, 4864)}, Reference: "Euler"},
	{Index: 428, Genus: "D11", Kind: KindRational, Steps: []Step{r(40, 37), r(37, 34), r(17, 15)}},
	{Index: 429, Genus: "D11", Kind: KindRational, Steps: []Step{r(10, 9), r(18, 17), r(17, 15)}, Reference: "Kornerup"},
	{Index: 430, Genus: "D11", Kind: KindRational, Steps: []Step{r(20, 19), r(19, 17), r(17, 15)}, Reference: "Ptolemy"},
	{Index: 431, Genus: "D11", Kind: KindRational, Steps: []Step{r(15, 14), r(56, 51), r(17, 15)}},
	{Index: 432, Genus: "D11", Kind: KindRational, Steps: []Step{r(80, 77), r(77, 68), r(17, 15)}},
	{Index: 433, Genus: "D11", Kind: KindRational, Steps: []Step{r(12, 11), r(55, 51), r(17, 15)}},
	{Index: 434, Genus: "D11", Kind: KindRational, Steps: []Step{r(120, 109), r(109, 102), r(17, 15)}},
	{Index: 435, Genus: "D11", Kind: KindRational, Steps: []Step{r(120, 113), r(113, 102), r(17, 15)}},
	{Index: 436, Genus: "D11", Kind: KindRational, Steps: []Step{r(24, 23), r(115, 102), r(17, 15)}},
	{Index: 437, Genus: "D11", Kind: KindRational, Steps: []Step{r(160, 153), r(9, 8), r(17, 15)}},
	{Index: 438, Genus: "D12", Kind: KindRational, Steps: []Step{r(66, 61), r(61, 56), r(112, 99)}},
	{Index: 439, Genus: "D12", Kind: KindRational, Steps: []Step{r(99, 94), r(47, 42), r(112, 99)}},
	{Index: 440, Genus: "D12", Kind: KindRational, Steps: []Step{r(99, 89), r(89, 84), r(112, 99)}},
	{Index: 441, Genus: "D12", Kind: KindRational, Steps: []Step{r(10, 9), r(297, 280), r(112, 99)}},
	{Index: 442, Genus: "D12", Kind: KindRational, Steps: []Step{r(22, 21), r(9, 8), r(112, 99)}},
	{Index: 443, Genus: "D13", Kind: KindRational, Steps: []Step{r(12, 11), r(13, 12), r(44, 39)}, Reference: "Young"},
	{Index: 444, Genus: "D13", Kind: KindRational, Steps: []Step{r(39, 35), r(35, 33), r(44, 39)}},
	{Index: 445, Genus: "D13", Kind: KindRational, Steps: []Step{r(39, 37), r(37, 33), r(44, 39)}},
	{Index: 446, Genus: "D13", Kind: KindRational, Steps: []Step{r(44, 39), r(9, 8), r(104, 99)}},
	{Index: 447, Genus: "D14", Kind: KindRational, Steps: []Step{r(90, 83), r(83, 76), r(152, 135)}},
	{Index: 448, Genus: "D14", Kind: KindRational, Steps: []Step{r(135, 128), r(64, 57), r(152, 135)}},
	{Index: 449, Genus: "D14", Kind: KindRational, Steps: []Step{r(135, 121), r(121, 114), r(152, 135)}},
	{Index: 450, Genus: "D14", Kind: KindRational, Steps: []Step{r(20, 19), r(9, 8), r(152, 135)}},
	{Index: 451, Genus: "D15", Kind: KindRational, Steps: []Step{r(64, 59), r(59, 54), r(9, 8)}, Reference: "Safiyu-d-Din"},
	{Index: 452, Genus: "D15", Kind: KindRational, Steps: []Step{r(48, 43), r(86, 81), r(9, 8)}, Reference: "Safiyu-d-Din"},
	{Index: 453, Genus: "D15", Kind: KindRational, Steps: []Step{r(96, 91), r(91, 81), r(9, 8)}},
	{Index: 454, Genus: "D15", Kind: KindRational, Steps: []Step{r(256, 243), r(9, 8), r(9, 8)}, Reference: "Pythagoras?"},
	{Index: 455, Genus: "D15", Kind: KindRational, Steps: []Step{r(16, 15), r(9, 8), r(10, 9)}, Reference: "Ptolemy, Didymos"},
	{Index: 456, Genus: "D15", Kind: KindRational, Steps: []Step{r(2187, 2048), r(65536, 59049), r(9, 8)}, Reference: "Anonymous"},
	{Index: 457, Genus: "D15", Kind: KindRational, Steps: []Step{r(9, 8), r(12, 11), r(88, 81)}, Reference: "Avicenna"},
	{Index: 458, Genus: "D15", Kind: KindRational, Steps: []Step{r(13, 12), r(9, 8), r(128, 117)}, Reference: "Avicenna"},
	{Index: 459, Genus: "D15", Kind: KindRational, Steps: []Step{r(14, 13), r(9, 8), r(208, 189)}, Reference: "Avicenna"},
	{Index: 460, Genus: "D15", Kind: KindRational, Steps: []Step{r(9, 8), r(11, 10), r(320, 297)}, Reference: "Al-Farabi"},
	{Index: 461, Genus: "D15", Kind: KindRational, Steps: []Step{r(9, 8), r(15, 14), r(448, 405)}},
	{Index: 462, Genus: "D15", Kind: KindRational, Steps: []Step{r(9, 8), r(17, 16), r(512, 459)}},
	{Index: 463, Genus: "D15", Kind: KindRational, Steps: []Step{r(9, 8), r(18, 17), r(272, 243)}},
	{Index: 464, Genus: "D15", Kind: KindRational, Steps: []Step{r(9, 8), r(19, 18), r(64, 57)}},
	{Index: 465, Genus: "D15", Kind: KindRational, Steps: []Step{r(56, 51), r(9, 8), r(68, 63)}},
	{Index: 466, Genus: "D15", Kind: KindRational, Steps: []Step{r(9, 8), r(200, 189), r(28, 25)}},
	{Index: 467, Genus: "D15", Kind: KindRational, Steps: []Step{r(184, 171), r(9, 8), r(76, 69)}},
	{Index: 468, Genus: "D15", Kind: KindRational, Steps: []Step{r(32, 29), r(9, 8), r(29, 27)}},
	{Index: 469, Genus: "D15", Kind: KindRational, Steps: []Step{r(121, 108), r(9, 8), r(128, 121)}, Reference: "Partch"},
	{Index: 470, Genus: "D15", Kind: KindRational, Steps: []Step{r(9, 8), r(4096, 3645), r(135, 128)}},
	{Index: 471, Genus: "D15", Kind: KindRational, Steps: []Step{r(9, 8), r(7168, 6561), r(243, 224)}},
	{Index: 472, Genus: "D15", Kind: KindRational, Steps: []Step{r(35, 32), r(1024, 945), r(9, 8)}},
	{Index: 473, Genus: "D16", Kind: KindRational, Steps: []Step{r(11, 10), r(13, 12), r(160, 143)}, Reference: "Al-Farabi"},
	{Index: 474, Genus: "D17", Kind: KindRational, Steps: []Step{r(12, 11), r(11, 10), r(10, 9)}, Reference: "Ptolemy"},
	{Index: 475, Genus: "D17", Kind: KindRational, Steps: []Step{r(10, 9), r(10, 9), r(27, 25)}, Reference: "Al-Farabi"},
	{Index: 476, Genus: "D17", Kind: KindRational, Steps: []Step{r(10, 9), r(13, 12), r(72, 65)}, Reference: "Avicenna"},
	{Index: 477, Genus: "R1", Kind: KindRational, Steps: []Step{r(11, 10), r(11, 10), r(400, 363)}},
	{Index: 478, Genus: "R2", Kind: KindRational, Steps: []Step{r(12, 11), r(12, 11), r(121, 108)}, Reference: "Avicenna"},
	{Index: 479, Genus: "R3", Kind: KindRational, Steps: []Step{r(13, 12), r(13, 12), r(192, 169)}, Reference: "Avicenna"},
	{Index: 480, Genus: "R4", Kind: KindRational, Steps: []Step{r(14, 13), r(14, 13), r(169, 147)}, Reference: "Avicenna"},
	{Index: 481, Genus: "R5", Kind: KindRational, Steps: []Step{r(15, 14), r(15, 14), r(784, 675)}, Reference: "Avicenna"},
	{Index: 482, Genus: "R6", Kind: KindRational, Steps: []Step{r(2187, 2048), r(16777216, 14348907), r(2187, 2048)}, Reference: "Palmer"},
	{Index: 483, Genus: "R7", Kind: KindRational, Steps: []Step{r(17, 16), r(17, 16), r(1024, 867)}},
	{Index: 484, Genus: "R8", Kind: KindRational, Steps: []Step{r(18, 17), r(18, 17), r(289, 243)}},
	{Index: 485, Genus: "R9", Kind: KindRational, Steps: []Step{r(256, 243), r(256, 243), r(19683, 16384)}, Comment: "Originally printed as 256/243 * 256/243 * 19688/16384"},
	{Index: 486, Genus: "R10", Kind: KindRational, Steps: []Step{r(22, 21), r(147, 121), r(22, 21)}},
	{Index: 487, Genus: "R11", Kind: KindRational, Steps: []Step{r(25, 24), r(25, 24), r(768, 625)}},
	{Index: 488, Genus: "R12", Kind: KindRational, Steps: []Step{r(28, 27), r(28, 27), r(243, 196)}},
	{Index: 489, Genus: "R13", Kind: KindRational, Steps: []Step{r(34, 33), r(34, 33), r(363, 289)}},
	{Index: 490, Genus: "R14", Kind: KindRational, Steps: []Step{r(36, 35), r(36, 35), r(1225, 972)}},
	{Index: 491, Genus: "R15", Kind: KindRational, Steps: []Step{r(40, 39), r(40, 39), r(507, 400)}},
	{Index: 492, Genus: "R16", Kind: KindRational, Steps: []Step{r(46, 45), r(46, 45), r(675, 529)}},
	{Index: 493, Genus: "M1", Kind: KindRational, Steps: []Step{r(176, 175), r(175, 174), r(29, 22)}},
	{Index: 494, Genus: "M2", Kind: KindRational, Steps: []Step{r(25, 19), r(931, 925), r(148, 147)}},
	{Index: 495, Genus: "M3", Kind: KindRational, Steps: []Step{r(128, 127), r(127, 126), r(21, 16)}},
	{Index: 496, Genus: "M4", Kind: KindRational, Steps: []Step{r(21, 16), r(656, 651), r(124, 123)}},
	{Index: 497, Genus: "M5", Kind: KindRational, Steps: []Step{r(104, 103), r(103, 102), r(17, 13)}},
	{Index: 498, Genus: "M6", Kind: KindRational, Steps: []Step{r(17, 13), r(429, 425), r(100, 99)}},
	{Index: 499, Genus: "M7", Kind: KindRational, Steps: []Step{r(98, 97), r(97, 96), r(64, 49)}},
	{Index: 500, Genus: "M8", Kind: KindRational, Steps: []Step{r(92, 91), r(91, 90), r(30, 23)}},
	{Index: 501, Genus: "M9", Kind: KindRational, Steps: []Step{r(90, 89), r(89, 88), r(176, 135)}},
	{Index: 502, Genus: "M10", Kind: KindRational, Steps: []Step{r(88, 87), r(87, 86), r(43, 33)}},
	{Index: 503, Genus: "M11", Kind: KindRational, Steps: []Step{r(86, 85), r(85, 84), r(56, 43)}},
	{Index: 504, Genus: "M12", Kind: KindRational, Steps: []Step{r(84, 83), r(83, 82), r(82, 63)}},
	{Index: 505, Genus: "M13", Kind: KindRational, Steps: []Step{r(82, 81), r(81, 80), r(160, 123)}},
	{Index: 506, Genus: "M14", Kind: KindRational, Steps: []Step{r(13, 10), r(250, 247), r(76, 75)}, Comment: "Originally printed as 13/10 * 250/247 * 76/74"},
	{Index: 507, Genus: "M15", Kind: KindRational, Steps: []Step{r(78, 77), r(77, 76), r(152, 117)}},
	{Index: 508, Genus: "M16", Kind: KindRational, Steps: []Step{r(76, 75), r(75, 74), r(74, 57)}, Comment: "Originally printed as 76/75 * 76/75 * 74/57"},
	{Index: 509, Genus: "M17", Kind: KindRational, Steps: []Step{r(74, 73), r(73, 72), r(48, 37)}, Comment: "Originally printed as 74/73 73/72 48/31"},
	{Index: 510, Genus: "M18", Kind: KindRational, Steps: []Step{r(70, 69), r(69, 68), r(136, 105)}},
	{Index: 511, Genus: "M19", Kind: KindRational, Steps: []Step{r(22, 17), r(357, 352), r(64, 63)}},
	{Index: 512, Genus: "M20", Kind: KindRational, Steps: []Step{r(58, 57), r(57, 56), r(112, 87)}},
	{Index: 513, Genus: "M21", Kind: KindRational, Steps: []Step{r(87, 86), r(43, 42), r(112, 87)}, Comment: "Originally printed as 87/80 * 43/42 * 112/87"},
	{Index: 514, Genus: "M22", Kind: KindRational, Steps: []Step{r(87, 85), r(85, 84), r(112, 87)}},
	{Index: 515, Genus: "M23", Kind: KindRational, Steps: []Step{r(68, 53), r(53, 52), r(52, 51)}},
	{Index: 516, Genus: "M24", Kind: KindRational, Steps: []Step{r(136, 133), r(133, 130), r(65, 51)}},
	{Index: 517, Genus: "M25", Kind: KindRational, Steps: []Step{r(68, 67), r(67, 65), r(65, 51)}},
	{Index: 518, Genus: "M26", Kind: KindRational, Steps: []Step{r(34, 33), r(66, 65), r(65, 51)}},
	{Index: 519, Genus: "M27", Kind: KindRational, Steps: []Step{r(68, 67), r(67, 54), r(18, 17)}},
	{Index: 520, Genus: "M28", Kind: KindRational, Steps: []Step{r(25, 24), r(32, 31), r(31, 25)}},
	{Index: 521, Genus: "M29", Kind: KindRational, Steps: []Step{r(68, 55), r(55, 54), r(18, 17)}},
	{Index: 522, Genus: "M30", Kind: KindRational, Steps: []Step{r(68, 67), r(67, 63), r(21, 17)}},
	{Index: 523, Genus: "M31", Kind: KindRational, Steps: []Step{r(68, 65), r(65, 63), r(21, 17)}},
	{Index: 524, Genus: "M32", Kind: KindRational, Steps: []Step{r(36, 35), r(256, 243), r(315, 256)}},
	{Index: 525, Genus: "M33", Kind: KindRational, Steps: []Step{r(64, 63), r(16, 15), r(315, 256)}},
	{Index: 526, Genus: "M34", Kind: KindRational, Steps: []Step{r(64, 63), r(2187, 2048), r(896, 729)}},
	{Index: 527, Genus: "M35", Kind: KindRational, Steps: []Step{r(36, 35), r(135, 128), r(896, 729)}},
	{Index: 528, Genus: "M36", Kind: KindRational, Steps: []Step{r(28, 27), r(2187, 1792), r(256, 243)}},
	{Index: 529, Genus: "M37", Kind: KindRational, Steps: []Step{r(16, 15), r(2240, 2187), r(2187, 1792)}},
	{Index: 530, Genus: "M38", Kind: KindRational, Steps: []Step{r(28, 27), r(128, 105), r(135, 128)}},
	{Index: 531, Genus: "M39", Kind: KindRational, Steps: []Step{r(17, 16), r(32, 31), r(62, 51)}},
	{Index: 532, Genus: "M40", Kind: KindRational, Steps: []Step{r(20, 19), r(57, 47), r(47, 45)}},
	{Index: 533, Genus: "M41", Kind: KindRational, Steps: []Step{r(360, 349), r(349, 327), r(109, 90)}},
	{Index: 534, Genus: "M42", Kind: KindRational, Steps: []Step{r(24, 23), r(115, 109), r(109, 90)}},
	{Index: 535, Genus: "M43", Kind: KindRational, Steps: []Step{r(240, 229), r(229, 218), r(109, 90)}},
	{Index: 536, Genus: "M44", Kind: KindRational, Steps: []Step{r(19, 18), r(24, 23), r(23, 19)}},
	{Index: 537, Genus: "M45", Kind: KindRational, Steps: []Step{r(15, 14), r(36, 35), r(98, 81)}},
	{Index: 538, Genus: "M46", Kind: KindRational, Steps: []Step{r(28, 27), r(16, 15), r(135, 112)}},
	{Index: 539, Genus: "M47", Kind: KindRational, Steps: []Step{r(24, 23), r(115, 96), r(16, 15)}},
	{Index: 540, Genus: "M48", Kind: KindRational, Steps: []Step{r(256, 243), r(243, 230), r(115, 96)}},
	{Index: 541, Genus: "M49", Kind: KindRational, Steps: []Step{r(68, 67), r(67, 56), r(56, 51)}},
	{Index: 542, Genus: "M50", Kind: KindRational, Steps: []Step{r(68, 57), r(19, 18), r(18, 17)}},
	{Index: 543, Genus: "M51", Kind: KindRational, Steps: []Step{r(15, 14), r(266, 255), r(68, 57)}},
	{Index: 544, Genus: "M52", Kind: KindRational, Steps: []Step{r(256, 243), r(243, 229), r(229, 192)}},
	{Index: 545, Genus: "M53", Kind: KindRational, Steps: []Step{r(32, 31), r(13, 12), r(31, 26)}},
	{Index: 546, Genus: "M54", Kind: KindRational, Steps: []Step{r(240, 227), r(227, 214), r(107, 90)}},
	{Index: 547, Genus: "M55", Kind: KindRational, Steps: []Step{r(360, 347), r(347, 321), r(107, 90)}},
	{Index: 548, Genus: "M56", Kind: KindRational, Steps: []Step{r(7168, 6561), r(36, 35), r(1215, 1024)}},
	{Index: 549, Genus: "M57", Kind: KindRational, Steps: []Step{r(16, 15), r(1215, 1024), r(256, 243)}},
	{Index: 550, Genus: "M58", Kind: KindRational, Steps: []Step{r(28, 27), r(1024, 945), r(1215, 1024)}},
	{Index: 551, Genus: "M59", Kind: KindRational, Steps: []Step{r(120, 113), r(113, 106), r(53, 45)}},
	{Index: 552, Genus: "M60", Kind: KindRational, Steps: []Step{r(180, 173), r(173, 159), r(53, 45)}},
	{Index: 553, Genus: "M61", Kind: KindRational, Steps: []Step{r(90, 83), r(166, 159), r(53, 45)}},
	{Index: 554, Genus: "M62", Kind: KindRational, Steps: []Step{r(24, 23), r(115, 106), r(53, 45)}},
	{Index: 555, Genus: "M63", Kind: KindRational, Steps: []Step{r(34, 29), r(58, 57), r(19, 17)}},
	{Index: 556, Genus: "M64", Kind: KindRational, Steps: []Step{r(10, 9), r(117, 100), r(40, 39)}},
	{Index: 557, Genus: "M65", Kind: KindRational, Steps: []Step{r(120, 113), r(113, 97), r(97, 90)}},
	{Index: 558, Genus: "M66", Kind: KindRational, Steps: []Step{r(13, 12), r(55, 52), r(64, 55)}},
	{Index: 559, Genus: "M67", Kind: KindRational, Steps: []Step{r(68, 65), r(65, 56), r(56, 51)}},
	{Index: 560, Genus: "M68", Kind: KindRational, Steps: []Step{r(12, 11), r(297, 256), r(256, 243)}},
	{Index: 561, Genus: "M69", Kind: KindRational, Steps: []Step{r(28, 27), r(81, 70), r(10, 9)}},
	{Index: 562, Genus: "M70", Kind: KindRational, Steps: []Step{r(81, 70), r(2240, 2187), r(9, 8)}},
	{Index: 563, Genus: "M71", Kind: KindRational, Steps: []Step{r(81, 70), r(256, 243), r(35, 32)}},
	{Index: 564, Genus: "M72", Kind: KindRational, Steps: []Step{r(135, 128), r(7168, 6561), r(81, 70)}},
	{Index: 565, Genus: "M73", Kind: KindRational, Steps: []Step{r(60, 59), r(59, 51), r(17, 15)}},
	{Index: 566, Genus: "M74", Kind: KindRational, Steps: []Step{r(40, 37), r(37, 32), r(16, 15)}},
	{Index: 567, Genus: "M75", Kind: KindRational, Steps: []Step{r(16, 15), r(280, 243), r(243, 224)}},
	{Index: 568, Genus: "M76", Kind: KindRational, Steps: []Step{r(36, 35), r(9, 8), r(280, 243)}},
	{Index: 569, Genus: "M77", Kind: KindRational, Steps: []Step{r(8, 7), r(81, 80), r(280, 243)}},
	{Index: 570, Genus: "M78", Kind: KindRational, Steps: []Step{r(46, 45), r(132, 115), r(25, 22)}},
	{Index: 571, Genus: "M79", Kind: KindRational, Steps: []Step{r(16, 15), r(12, 11), r(55, 48)}},
	{Index: 572, Genus: "M80", Kind: KindRational, Steps: []Step{r(10, 9), r(63, 55), r(22, 21)}},
	{Index: 573, Genus: "M81", Kind: KindRational, Steps: []Step{r(30, 29), r(116, 103), r(103, 90)}},
	{Index: 574, Genus: "M82", Kind: KindRational, Steps: []Step{r(360, 343), r(343, 309), r(103, 90)}},
	{Index: 575, Genus: "M83", Kind: KindRational, Steps: []Step{r(40, 39), r(143, 125), r(25, 22)}},
	{Index: 576, Genus: "M84", Kind: KindRational, Steps: []Step{r(68, 65), r(65, 57), r(19, 17)}},
	{Index: 577, Genus: "M85", Kind: KindRational, Steps: []Step{r(256, 243), r(729, 640), r(10, 9)}},
	{Index: 578, Genus: "M86", Kind: KindRational, Steps: []Step{r(30, 29), r(58, 51), r(17, 15)}},
	{Index: 579, Genus: "M87", Kind: KindRational, Steps: []Step{r(23, 21), r(14, 13), r(26, 23)}},
	{Index: 580, Genus: "M88", Kind: KindRational, Steps: []Step{r(23, 22), r(44, 39), r(26, 23)}},
	{Index: 581, Genus: "M89", Kind: KindRational, Steps: []Step{r(14, 13), r(260, 231), r(11, 10)}},
	{Index: 582, Genus: "M90", Kind: KindRational, Steps: []Step{r(4096, 3645), r(35, 32), r(243, 224)}},
	{Index: 583, Genus: "M91", Kind: KindRational, Steps: []Step{r(38, 35), r(35, 32), r(64, 57)}},
	{Index: 584, Genus: "M92", Kind: KindRational, Steps: []Step{r(19, 17), r(17, 16), r(64, 57)}},
	{Index: 585, Genus: "M93", Kind: KindRational, Steps: []Step{r(11, 10), r(95, 88), r(64, 57)}},
	{Index: 586, Genus: "M94", Kind: KindRational, Steps: []Step{r(240, 221), r(221, 202), r(101, 90)}},
	{Index: 587, Genus: "M95", Kind: KindRational, Steps: []Step{r(15, 14), r(112, 101), r(101, 90)}},
	{Index: 588, Genus: "M96", Kind: KindRational, Steps: []Step{r(120, 113), r(113, 101), r(101, 90)}},
	{Index: 589, Genus: "M97", Kind: KindRational, Steps: []Step{r(533, 483), r(575, 533), r(28, 25)}},
	{Index: 590, Genus: "M98", Kind: KindRational, Steps: []Step{r(19, 17), r(85, 76), r(16, 15)}},
	{Index: 591, Genus: "M99", Kind: KindRational, Steps: []Step{r(19, 17), r(1156, 1083), r(19, 17)}},
	{Index: 592, Genus: "M100", Kind: KindRational, Steps: []Step{r(68, 63), r(21, 19), r(19, 17)}},
	{Index: 593, Genus: "M101", Kind: KindRational, Steps: []Step{r(10, 9), r(108, 97), r(97, 90)}},
	{Index: 594, Genus: "T1", Kind: KindParts, Parts: []*big.Rat{q(2, 1), q(2, 1), q(26, 1)}, Cents: []float64{33, 33, 433}, Reference: "Chapter 4"},
	{Index: 595, Genus: "T2", Kind: KindParts, Parts: []*big.Rat{q(5, 2), q(5, 2), q(25, 1)}, Cents: []float64{42, 42, 417}, Reference: "Chapter 4"},
	{Index: 596, Genus: "T3", Kind: KindParts, Parts: []*big.Rat{q(2, 1), q(3, 1), q(25, 1)}, Cents: []float64{33, 50, 417}, Reference: "Chapter 4"},
	{Index: 597, Genus: "T4", Kind: KindParts, Parts: []*big.Rat{q(3, 1), q(3, 1), q(24, 1)}, Cents: []float64{50, 50, 400}, Reference: "Aristoxenos"},
	{Index: 598, Genus: "T5", Kind: KindParts, Parts: []*big.Rat{q(2, 1), q(4, 1), q(24, 1)}, Cents: []float64{33, 67, 400}, Reference: "Chapter 4"},
	{Index: 599, Genus: "T6", Kind: KindParts, Parts: []*big.Rat{q(2, 1), q(5, 1), q(23, 1)}, Cents: []float64{33, 83, 383}, Reference: "Chapter 4"},
	{Index: 600, Genus: "T7", Kind: KindParts, Parts: []*big.Rat{q(7, 3), q(14, 3), q(23, 1)}, Cents: []float64{39, 78, 383}, Reference: "Chapter 4"},
	{Index: 601, Genus: "T8", Kind: KindParts, Parts: []*big.Rat{q(4, 1), q(3, 1), q(23, 1)}, Cents: []float64{67, 50, 383}, Reference: "Chapter 3"},
	{Index: 602, Genus: "T9", Kind: KindParts, Parts: []*big.Rat{q(7, 2), q(7, 2), q(23, 1)}, Cents: []float64{58, 58, 383}, Reference: "Chapter 4"},
	{Index: 603, Genus: "T10", Kind: KindParts, Parts: []*big.Rat{q(2, 1), q(6, 1), q(22, 1)}, Cents: []float64{33, 100, 367}, Reference: "Chapter 4"},
	{Index: 604, Genus: "T11", Kind: KindParts, Parts: []*big.Rat{q(4, 1), q(4, 1), q(22, 1)}, Cents: []float64{66, 66, 367}, Reference: "Aristoxenos"},
	{Index: 605, Genus: "T12", Kind: KindParts, Parts: []*big.Rat{q(8, 3), q(16, 3), q(22, 1)}, Cents: []float64{44, 89, 367}, Reference: "Chapter 4"},
	{Index: 606, Genus: "T13", Kind: KindParts, Parts: []*big.Rat{q(3, 1), q(5, 1), q(22, 1)}, Cents: []float64{50, 83, 367}, Reference: "Chapter 4"},
	{Index: 607, Genus: "T14", Kind: KindParts, Parts: []*big.Rat{q(9, 2), q(7, 2), q(22, 1)}, Cents: []float64{75, 58, 367}, Reference: "Aristoxenos"},
	{Index: 608, Genus: "T15", Kind: KindParts, Parts: []*big.Rat{q(2, 1), q(7, 1), q(21, 1)}, Cents: []float64{33, 117, 350}, Reference: "Chapter 4"},
	{Index: 609, Genus: "T16", Kind: KindParts, Parts: []*big.Rat{q(3, 1), q(6, 1), q(21, 1)}, Cents: []float64{50, 100, 350}, Reference: "Chapter 4"},
	{Index: 610, Genus: "T17", Kind: KindParts, Parts: []*big.Rat{q(9, 2), q(9, 2), q(21, 1)}, Cents: []float64{75, 75, 350}, Reference: "Aristoxenos"},
	{Index: 611, Genus: "T18", Kind: KindParts, Parts: []*big.Rat{q(4, 1), q(5, 1), q(21, 1)}, Cents: []float64{67, 83, 350}, Reference: "Chapter 4"},
	{Index: 612, Genus: "T19", Kind: KindParts, Parts: []*big.Rat{q(6, 1), q(3, 1), q(21, 1)}, Cents: []float64{100, 50, 350}, Reference: "Aristoxenos"},
	{Index: 613, Genus: "T20", Kind: KindParts, Parts: []*big.Rat{q(6, 1), q(20, 1), q(4, 1)}, Cents: []float64{100, 333, 67}, Reference: "Savas"},
	{Index: 614, Genus: "T21", Kind: KindParts, Parts: []*big.Rat{q(10, 3), q(20, 3), q(20, 1)}, Cents: []float64{56, 111, 333}, Reference: "Chapter 4"},
	{Index: 615, Genus: "T22", Kind: KindParts, Parts: []*big.Rat{q(5, 1), q(5, 1), q(20, 1)}, Cents: []float64{83, 83, 333}, Reference: "Chapter 4"},
	{Index: 616, Genus: "T23", Kind: KindParts, Parts: []*big.Rat{q(11, 2), q(11, 2), q(19, 1)}, Cents: []float64{92, 92, 317}, Reference: "Chapter 4"},
	{Index: 617, Genus: "T24", Kind: KindParts, Parts: []*big.Rat{q(11, 3), q(22, 3), q(19, 1)}, Cents: []float64{61, 122, 317}, Reference: "Chapter 4"},
	{Index: 618, Genus: "T25", Kind: KindParts, Parts: []*big.Rat{q(5, 1), q(19, 1), q(6, 1)}, Cents: []float64{83, 317, 100}, Reference: "Xenakis"},
	{Index: 619, Genus: "T26", Kind: KindParts, Parts: []*big.Rat{q(5, 1), q(6, 1), q(19, 1)}, Cents: []float64{83, 100, 317}, Reference: "Macran"},
	{Index: 620, Genus: "T27", Kind: KindParts, Parts: []*big.Rat{q(2, 1), q(10, 1), q(18, 1)}, Cents: []float64{33, 167, 300}, Reference: "Chapter 4"},
	{Index: 621, Genus: "T28", Kind: KindParts, Parts: []*big.Rat{q(3, 1), q(9, 1), q(18, 1)}, Cents: []float64{50, 150, 300}, Reference: "Chapter 4"},
	{Index: 622, Genus: "T29", Kind: KindParts, Parts: []*big.Rat{q(4, 1), q(8, 1), q(18, 1)}, Cents: []float64{67, 133, 301}, Reference: "Aristoxenos"},
	{Index: 623, Genus: "T30", Kind: KindParts, Parts: []*big.Rat{q(9, 2), q(15, 2), q(18, 1)}, Cents: []float64{75, 125, 300}, Reference: "Chapter 4"},
	{Index: 624, Genus: "T31", Kind: KindParts, Parts: []*big.Rat{q(6, 1), q(6, 1), q(18, 1)}, Cents: []float64{100, 100, 300}, Reference: "Aristoxenos"},
	{Index: 625, Genus: "T32", Kind: KindParts, Parts: []*big.Rat{q(5, 1), q(7, 1), q(18, 1)}, Cents: []float64{83, 117, 300}, Reference: "Chapter 4"},
	{Index: 626, Genus: "T33", Kind: KindParts, Parts: []*big.Rat{q(6, 1), q(18, 1), q(6, 1)}, Cents: []float64{100, 300, 100}, Reference: "Athanasopoulos"},
	{Index: 627, Genus: "T34", Kind: KindParts, Parts: []*big.Rat{q(13, 3), q(26, 3), q(17, 1)}, Cents: []float64{72, 144, 283}, Reference: "Chapter 4"},
	{Index: 628, Genus: "T35", Kind: KindParts, Parts: []*big.Rat{q(13, 2), q(13, 2), q(17, 1)}, Cents: []float64{108, 108, 283}, Reference: "Chapter 4"},
	{Index: 629, Genus: "T36", Kind: KindParts, Parts: []*big.Rat{q(2, 1), q(16, 1), q(12, 1)}, Cents: []float64{33, 267, 200}, Reference: "Chapter 4"},
	{Index: 630, Genus: "T37", Kind: KindParts, Parts: []*big.Rat{q(14, 3), q(28, 3), q(16, 1)}, Cents: []float64{78, 156, 267}, Reference: "Chapter 4"},
	{Index: 631, Genus: "T38", Kind: KindParts, Parts: []*big.Rat{q(5, 1), q(9, 1), q(16, 1)}, Cents: []float64{83, 150, 267}, Reference: "Winnington-Ingram"},
	{Index: 632, Genus: "T39", Kind: KindParts, Parts: []*big.Rat{q(8, 1), q(16, 1), q(6, 1)}, Cents: []float64{133, 267, 100}, Reference: "Savas"},
	{Index: 633, Genus: "T40", Kind: KindParts, Parts: []*big.Rat{q(7, 1), q(16, 1), q(7, 1)}, Cents: []float64{117, 267, 117}, Reference: "Xenakis; Chapter 4"},
	{Index: 634, Genus: "T41", Kind: KindParts, Parts: []*big.Rat{q(2, 1), q(13, 1), q(15, 1)}, Cents: []float64{33, 217, 250}, Reference: "Chapter 4"},
	{Index: 635, Genus: "T42", Kind: KindParts, Parts: []*big.Rat{q(3, 1), q(12, 1), q(15, 1)}, Cents: []float64{50, 200, 250}, Reference: "Chapter 4"},
	{Index: 636, Genus: "T43", Kind: KindParts, Parts: []*big.Rat{q(4, 1), q(11, 1), q(15, 1)}, Cents: []float64{67, 183, 250}, Reference: "Chapter 4"},
	{Index: 637, Genus: "T44", Kind: KindParts, Parts: []*big.Rat{q(5, 1), q(10, 1), q(15, 1)}, Cents: []float64{83, 167, 250}, Reference: "Chapter 4"},
	{Index: 638, Genus: "T45", Kind: KindParts, Parts: []*big.Rat{q(6, 1), q(9, 1), q(15, 1)}, Cents: []float64{100, 150, 250}, Reference: "Aristoxenos"},
	{Index: 639, Genus: "T46", Kind: KindParts, Parts: []*big.Rat{q(7, 1), q(8, 1), q(15, 1)}, Cents: []float64{117, 133, 250}, Reference: "Chapter 4"},
	{Index: 640, Genus: "T47", Kind: KindParts, Parts: []*big.Rat{q(15, 2), q(15, 2), q(15, 1)}, Cents: []float64{125, 125, 250}, Reference: "Chapter 4"},
	{Index: 641, Genus: "T48", Kind: KindParts, Parts: []*big.Rat{q(9, 1), q(15, 1), q(6, 1)}, Cents: []float64{150, 250, 100}, Reference: "Athanasopoulos"},
	{Index: 642, Genus: "T49", Kind: KindParts, Parts: []*big.Rat{q(2, 1), q(14, 1), q(14, 1)}, Cents: []float64{33, 233, 233}, Reference: "Chapter 4"},
	{Index: 643, Genus: "T50", Kind: KindParts, Parts: []*big.Rat{q(4, 1), q(14, 1), q(12, 1)}, Cents: []float64{67, 233, 200}, Reference: "Aristoxenos"},
	{Index: 644, Genus: "T51", Kind: KindParts, Parts: []*big.Rat{q(5, 1), q(11, 1), q(14, 1)}, Cents: []float64{83, 183, 233}, Reference: "Winnington-Ingram"},
	{Index: 645, Genus: "T52", Kind: KindParts, Parts: []*big.Rat{q(16, 3), q(32, 3), q(14, 1)}, Cents: []float64{89, 178, 233}, Reference: "Chapter 4"},
	{Index: 646, Genus: "T53", Kind: KindParts, Parts: []*big.Rat{q(8, 1), q(8, 1), q(14, 1)}, Cents: []float64{133, 133, 233}, Reference: "Chapter 4"},
	{Index: 647, Genus: "T54", Kind: KindParts, Parts: []*big.Rat{q(9, 2), q(27, 2), q(12, 1)}, Cents: []float64{75, 225, 200}, Reference: "Aristoxenos"},
	{Index: 648, Genus: "T55", Kind: KindParts, Parts: []*big.Rat{q(5, 1), q(12, 1), q(13, 1)}, Cents: []float64{83, 200, 217}, Reference: "Chapter 4"},
	{Index: 649, Genus: "T56", Kind: KindParts, Parts: []*big.Rat{q(4, 1), q(13, 1), q(13, 1)}, Cents: []float64{67, 217, 217}, Reference: "Chapter 4"},
	{Index: 650, Genus: "T57", Kind: KindParts, Parts: []*big.Rat{q(17, 3), q(34, 3), q(13, 1)}, Cents: []float64{94, 189, 217}, Reference: "Chapter 4"},
	{Index: 651, Genus: "T58", Kind: KindParts, Parts: []*big.Rat{q(17, 2), q(17, 2), q(13, 1)}, Cents: []float64{142, 142, 217}, Reference: "Chapter 4"},
	{Index: 652, Genus: "T59", Kind: KindParts, Parts: []*big.Rat{q(6, 1), q(12, 1), q(12, 1)}, Cents: []float64{100, 200, 200}, Reference: "Aristoxenos"},
	{Index: 653, Genus: "T60", Kind: KindParts, Parts: []*big.Rat{q(12, 1), q(11, 1), q(7, 1)}, Cents: []float64{200, 183, 117}, Reference: "Xenakis"},
	{Index: 654, Genus: "T61", Kind: KindParts, Parts: []*big.Rat{q(10, 1), q(8, 1), q(12, 1)}, Cents: []float64{167, 133, 200}, Reference: "Savas"},
	{Index: 655, Genus: "T62", Kind: KindParts, Parts: []*big.Rat{q(12, 1), q(9, 1), q(9, 1)}, Cents: []float64{200, 150, 150}, Reference: "Al-Farabi; Chapter 4"},
	{Index: 656, Genus: "T63", Kind: KindParts, Parts: []*big.Rat{q(8, 1), q(11, 1), q(11, 1)}, Cents: []float64{133, 183, 183}, Reference: "Chapter 4"},
	{Index: 657, Genus: "T64", Kind: KindParts, Parts: []*big.Rat{q(19, 2), q(19, 2), q(11, 1)}, Cents: []float64{158, 158, 183}, Reference: "Chapter 4"},
	{Index: 658, Genus: "T65", Kind: KindParts, Parts: []*big.Rat{q(10, 1), q(10, 1), q(10, 1)}, Cents: []float64{166, 167, 167}, Reference: "Al-Farabi"},
	{Index: 659, Genus: "T66", Kind: KindParts, Parts: []*big.Rat{q(12, 1), q(13, 1), q(3, 1)}, Cents: []float64{212, 229, 53}, Fourth: 494.0, Reference: "Tiby"},
	{Index: 660, Genus: "T67", Kind: KindParts, Parts: []*big.Rat{q(12, 1), q(5, 1), q(11, 1)}, Cents: []float64{212, 88, 194}, Fourth: 494.0, Reference: "Tiby"},
	{Index: 661, Genus: "T68", Kind: KindParts, Parts: []*big.Rat{q(12, 1), q(9, 1), q(7, 1)}, Cents: []float64{212, 159, 124}, Fourth: 494.0, Reference: "Tiby"},
	{Index: 662, Genus: "T69", Kind: KindParts, Parts: []*big.Rat{q(9, 1), q(12, 1), q(7, 1)}, Cents: []float64{159, 212, 124}, Fourth: 494.0, Reference: "Tiby"},
	{Index: 663, Genus: "T70", Kind: KindTempered, Cents: []float64{22.7, 22.7, 454.4}, Reference: "Chapter 5"},
	{Index: 664, Genus: "T71", Kind: KindTempered, Cents: []float64{37.5, 37.5, 425}, Reference: "Chapter 5"},
	{Index: 665, Genus: "T72", Kind: KindTempered, Cents: []float64{62.5, 62.5, 375}, Reference: "Chapter 5"},
	{Index: 666, Genus: "T73", Kind: KindTempered, Cents: []float64{95, 115, 290}, Reference: "Chapter 5"},
	{Index: 667, Genus: "T74", Kind: KindTempered, Cents: []float64{89, 289, 122}, Reference: "Chapter 5"},
	{Index: 668, Genus: "T75", Kind: KindTempered, Cents: []float64{87.5, 287.5, 125}, Reference: "Chapter 5"},
	{Index: 669, Genus: "T76", Kind: KindTempered, Cents: []float64{83.3, 283.3, 133.3}, Reference: "Chapter 5"},
	{Index: 670, Genus: "T77", Kind: KindTempered, Cents: []float64{75, 275, 150}, Reference: "Chapter 5"},
	{Index: 671, Genus: "T78", Kind: KindTempered, Cents: []float64{100, 275, 125}, Reference: "Chapter 5"},
	{Index: 672, Genus: "T79", Kind: KindTempered, Cents: []float64{55, 170, 275}, Reference: "Chapter 5"},
	{Index: 673, Genus: "T80", Kind: KindTempered, Cents: []float64{66.7, 266.7, 166.7}, Reference: "Chapter 5"},
	{Index: 674, Genus: "T81", Kind: KindTempered, Cents: []float64{233.3, 16.7, 250}, Reference: "Chapter 5"},
	{Index: 675, Genus: "T82", Kind: KindTempered, Cents: []float64{225, 25, 250}, Reference: "Chapter 5"},
	{Index: 676, Genus: "T83", Kind: KindTempered, Cents: []float64{66.7, 183.3, 250}, Reference: "Chapter 5"},
	{Index: 677, Genus: "T84", Kind: KindTempered, Cents: []float64{75, 175, 250}, Reference: "Chapter 5"},
	{Index: 678, Genus: "T85", Kind: KindTempered, Cents: []float64{125, 125, 250}, Reference: "Chapter 5"},
	{Index: 679, Genus: "T86", Kind: KindTempered, Cents: []float64{105, 145, 250}, Reference: "Chapter 5"},
	{Index: 680, Genus: "T87", Kind: KindTempered, Cents: []float64{110, 140, 250}, Reference: "Chapter 5"},
	{Index: 681, Genus: "T88", Kind: KindTempered, Cents: []float64{87.5, 237.5, 175}, Reference: "Chapter 5"},
	{Index: 682, Genus: "T89", Kind: KindTempered, Cents: []float64{233.3, 166.7, 100}, Reference: "Chapter 5"},
	{Index: 683, Genus: "T90", Kind: KindTempered, Cents: []float64{212.5, 62.5, 225}, Reference: "Chapter 5"},
	{Index: 684, Genus: "T91", Kind: KindTempered, Cents: []float64{225, 75, 200}, Reference: "Chapter 5"},
	{Index: 685, Genus: "T92", Kind: KindTempered, Cents: []float64{225, 175, 100}, Reference: "Chapter 5"},
	{Index: 686, Genus: "T93", Kind: KindTempered, Cents: []float64{87.5, 187.5, 225}, Reference: "Chapter 5"},
	{Index: 687, Genus: "T94", Kind: KindTempered, Cents: []float64{212.5, 162.5, 125}, Reference: "Chapter 5"},
	{Index: 688, Genus: "T95", Kind: KindTempered, Cents: []float64{100, 187.5, 212.5}, Reference: "Chapter 5"},
	{Index: 689, Genus: "T96", Kind: KindTempered, Cents: []float64{212.5, 137.5, 150}, Reference: "Chapter 5"},
	{Index: 690, Genus: "T97", Kind: KindTempered, Cents: []float64{200, 125, 175}, Reference: "Chapter 5"},
	{Index: 691, Genus: "T98", Kind: KindTempered, Cents: []float64{145, 165, 190}, Reference: "Chapter 5"},
	{Index: 692, Genus: "S1", Kind: KindSemiTempered, Steps: []Step{pow(256, 243, 1, 2), pow(256, 243, 1, 2), r(81, 64)}, Cents: []float64{45, 45, 408}},
	{Index: 693, Genus: "S2", Kind: KindSemiTempered, Steps: []Step{factor(1.26376), factor(1.05231), factor(1.0026)}, Cents: []float64{405, 88, 4}, Comment: "Originally printed as 1.26376 * 1.05321 * 1.00260"},
	{Index: 694, Genus: "S3", Kind: KindSemiTempered, Steps: []Step{pow(4, 3, 1, 10), pow(4, 3, 1, 10), pow(4, 3, 8, 10)}, Cents: []float64{50, 50, 398}},
	{Index: 695, Genus: "S4", Kind: KindSemiTempered, Steps: []Step{pow(4, 3, 2, 15), pow(4, 3, 2, 15), pow(4, 3, 11, 15)}, Cents: []float64{66, 66, 365}},
	{Index: 696, Genus: "S5", Kind: KindSemiTempered, Steps: []Step{pow(4, 3, 3, 20), pow(4, 3, 7, 60), pow(4, 3, 11, 15)}, Cents: []float64{75, 58, 365}},
	{Index: 697, Genus: "S6", Kind: KindSemiTempered, Steps: []Step{pow(4, 3, 3, 20), pow(4, 3, 3, 20), pow(4, 3, 7, 10)}, Cents: []float64{75, 75, 349}},
	{Index: 698, Genus: "S7", Kind: KindSemiTempered, Steps: []Step{pow(4, 3, 1, 5), pow(4, 3, 1, 10), pow(4, 3, 7, 10)}, Cents: []float64{100, 50, 349}},
	{Index: 699, Genus: "S8", Kind: KindSemiTempered, Steps: []Step{factor(1.21677), factor(1.03862), factor(1.05505)}, Cents: []float64{340, 66, 93}},
	{Index: 700, Genus: "S9", Kind: KindSemiTempered, Steps: []Step{pow(4, 3, 1, 5), pow(4, 3, 1, 5), pow(4, 3, 3, 5)}, Cents: []float64{100, 100, 299}},
	{Index: 701, Genus: "S10", Kind: KindSemiTempered, Steps: []Step{pow(4, 3, 2, 15), pow(4, 3, 4, 15), pow(4, 3, 3, 5)}, Cents: []float64{66, 133, 299}},
	{Index: 702, Genus: "S11", Kind: KindSemiTempered, Steps: []Step{pow(9, 8, 1, 2), pow(9, 8, 1, 2), r(32, 27)}, Cents: []float64{102, 102, 294}},
	{Index: 703, Genus: "S12", Kind: KindSemiTempered, Steps: []Step{factor(1.18046), factor(1.06685), factor(1.05873)}, Cents: []float64{287, 112, 99}},
	{Index: 704, Genus: "S13", Kind: KindSemiTempered, Steps: []Step{factor(1.05956), factor(1.06763), factor(1.17876)}, Cents: []float64{100, 113, 285}},
	{Index: 705, Genus: "S14", Kind: KindSemiTempered, Steps: []Step{factor(1.17867), factor(1.06763), factor(1.05963)}, Cents: []float64{285, 113, 100}},
	{Index: 706, Genus: "S15", Kind: KindSemiTempered, Steps: []Step{factor(1.17851), factor(1.06771), factor(1.05963)}, Cents: []float64{284, 113, 100}},
	{Index: 707, Genus: "S16", Kind: KindSemiTempered, Steps: []Step{factor(1.17691), factor(1.06807), factor(1.06069)}, Cents: []float64{282, 114, 102}, Comment: "Originally printed as 1.17851 * 1.06771 * 1.05963, same as S15"},
	{Index: 708, Genus: "S17", Kind: KindSemiTempered, Steps: []Step{pow(4, 3, 1, 5), pow(4, 3, 3, 10), pow(4, 3, 1, 2)}, Cents: []float64{100, 149, 250}},
	{Index: 709, Genus: "S18", Kind: KindSemiTempered, Steps: []Step{factor(1.07457), factor(1.07457), factor(1.154701)}, Cents: []float64{125, 125, 249}},
	{Index: 710, Genus: "S19", Kind: KindSemiTempered, Steps: []Step{pow(4, 3, 2, 15), pow(4, 3, 7, 15), pow(4, 3, 2, 5)}, Cents: []float64{66, 232, 199}},
	{Index: 711, Genus: "S20", Kind: KindSemiTempered, Steps: []Step{factor(1.13847), factor(1.125), factor(1.041)}, Cents: []float64{225, 204, 70}},
	{Index: 712, Genus: "S21", Kind: KindSemiTempered, Steps: []Step{pow(4, 3, 3, 20), pow(4, 3, 9, 20), pow(4, 3, 2, 5)}, Cents: []float64{75, 224, 199}},
	{Index: 713, Genus: "S22", Kind: KindSemiTempered, Steps: []Step{factor(1.13371), factor(1.125), factor(1.0454)}, Cents: []float64{217, 204, 77}},
	{Index: 714, Genus: "S23", Kind: KindSemiTempered, Steps: []Step{factor(1.13315), factor(1.125), factor(1.04595)}, Cents: []float64{216, 204, 78}},
	{Index: 715, Genus: "S24", Kind: KindSemiTempered, Steps: []Step{factor(1.09185), factor(1.07803), factor(1.13278)}, Cents: []float64{152, 130, 216}},
	{Index: 716, Genus: "S25", Kind: KindSemiTempered, Steps: []Step{factor(1.09291), factor(1.078328), factor(1.13137)}, Cents: []float64{154, 131, 214}},
	{Index: 717, Genus: "S26", Kind: KindSemiTempered, Steps: []Step{factor(1.09301), factor(1.07837), factor(1.13122)}, Cents: []float64{154, 131, 213}},
	{Index: 718, Genus: "S27", Kind: KindSemiTempered, Steps: []Step{factor(1.09429), factor(1.07874), factor(1.1295)}, Cents: []float64{156, 131, 211}},
	{Index: 719, Genus: "S28", Kind: KindSemiTempered, Steps: []Step{factor(1.1295), factor(1.125), factor(1.0493)}, Cents: []float64{211, 204, 83}},
	{Index: 720, Genus: "S29", Kind: KindSemiTempered, Steps: []Step{factor(1.08866), factor(1.125), factor(1.08866)}, Cents: []float64{147, 204, 147}},
	{Index: 721, Genus: "S30", Kind: KindSemiTempered, Steps: []Step{pow(4, 3, 1, 5), pow(4, 3, 2, 5), pow(4, 3, 2, 5)}, Cents: []float64{100, 199, 199}},
	{Index: 722, Genus: "S31", Kind: KindSemiTempered, Steps: []Step{pow(4, 3, 1, 3), pow(4, 3, 1, 3), pow(4, 3, 1, 3)}, Cents: []float64{166, 166, 166}},
	{Index: 723, Genus: "S32", Kind: KindSemiTempered, Steps: []Step{pow(4, 3, 2, 5), pow(4, 3, 3, 10), pow(4, 3, 3, 10)}, Cents: []float64{200, 149, 149}},
}
