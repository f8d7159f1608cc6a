// Package tetrachord emits the Divisions of the Tetrachord catalog:
// John Chalmers' 723 divisions of the 4/3 fourth, in four notations
// (exact ratios, Aristoxenian parts, tempered cents, semi-tempered
// rational powers). The catalog is self-checking: indices must be
// sequential, each classical genus must contain its characteristic
// interval, and no two entries may share a step tuple.
package tetrachord
