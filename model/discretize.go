/*
Copyright 2024 The OMEN-Go Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package model

import "math/bits"

// log2FracQ16 holds 65536*log2(1 + i/256) for i in [0..255], the same
// fixed-point-log technique the reference codebase's internal.LOG2_4096
// table uses (there: 4096*log2(x) for x in [0..255]); this table trades
// the reference's 12-bit fixed point for 16-bit because OMEN's counts can
// span a much wider dynamic range than a single byte.
var log2FracQ16 = [256]int64{
	0, 369, 736, 1102, 1466, 1829, 2190, 2551,
	2909, 3267, 3623, 3978, 4331, 4683, 5034, 5384,
	5732, 6079, 6425, 6769, 7112, 7454, 7795, 8134,
	8473, 8810, 9146, 9480, 9814, 10146, 10477, 10807,
	11136, 11464, 11791, 12116, 12440, 12764, 13086, 13407,
	13727, 14046, 14363, 14680, 14996, 15310, 15624, 15937,
	16248, 16559, 16868, 17177, 17484, 17791, 18096, 18401,
	18704, 19007, 19308, 19609, 19909, 20207, 20505, 20802,
	21098, 21393, 21687, 21980, 22272, 22564, 22854, 23144,
	23433, 23720, 24007, 24293, 24579, 24863, 25146, 25429,
	25711, 25992, 26272, 26551, 26830, 27108, 27384, 27660,
	27936, 28210, 28484, 28757, 29029, 29300, 29571, 29840,
	30109, 30378, 30645, 30912, 31178, 31443, 31707, 31971,
	32234, 32496, 32758, 33019, 33279, 33538, 33797, 34055,
	34312, 34569, 34825, 35080, 35334, 35588, 35841, 36094,
	36346, 36597, 36847, 37097, 37346, 37595, 37842, 38090,
	38336, 38582, 38827, 39072, 39316, 39559, 39802, 40044,
	40286, 40527, 40767, 41006, 41246, 41484, 41722, 41959,
	42196, 42432, 42667, 42902, 43137, 43370, 43603, 43836,
	44068, 44300, 44530, 44761, 44990, 45220, 45448, 45676,
	45904, 46131, 46357, 46583, 46809, 47034, 47258, 47482,
	47705, 47928, 48150, 48372, 48593, 48813, 49034, 49253,
	49472, 49691, 49909, 50127, 50344, 50560, 50776, 50992,
	51207, 51422, 51636, 51850, 52063, 52276, 52488, 52700,
	52911, 53122, 53332, 53542, 53751, 53960, 54169, 54377,
	54584, 54791, 54998, 55204, 55410, 55615, 55820, 56025,
	56229, 56432, 56635, 56838, 57040, 57242, 57443, 57644,
	57845, 58045, 58245, 58444, 58643, 58841, 59039, 59237,
	59434, 59631, 59827, 60023, 60219, 60414, 60609, 60803,
	60997, 61190, 61384, 61576, 61769, 61961, 62152, 62343,
	62534, 62725, 62915, 63104, 63294, 63483, 63671, 63859,
	64047, 64234, 64421, 64608, 64794, 64980, 65166, 65351,
}

// log2Q16 returns an approximation of 65536*log2(x) for x >= 1: the integer
// part is exact, the fraction is the rounded log2FracQ16 entry indexed by
// the 8 bits of x just below its leading bit (any lower bits are
// dropped), so the result never decreases as x grows but is not exactly
// floor(65536*log2(x)). It is computed entirely with
// integer arithmetic so the result is identical across platforms and Go
// versions (spec.md §4.3 "Determinism" and §8 I6 both require
// byte-identical enumeration across independent runs/implementations,
// which a floating point math.Log2 would put at risk).
func log2Q16(x uint64) int64 {
	if x < 1 {
		x = 1
	}

	exp := bits.Len64(x) - 1 // floor(log2(x))
	shift := exp - 8
	var mantissa uint64

	if shift >= 0 {
		mantissa = x >> uint(shift)
	} else {
		mantissa = x << uint(-shift)
	}

	// mantissa is now in [256, 511]
	frac := log2FracQ16[mantissa-256]

	return int64(exp)<<16 + frac
}

// level maps a raw (count, total) pair to an integer level in
// [0, maxLevel], where floorCount is the smoothing-floor count (every
// caller passes smoothingFloor, i.e. 2: one observation plus the additive
// +1) against the same total. Level 0 is the most probable bucket; a count
// equal to the floor lands exactly on maxLevel, and a count below it is
// clamped to maxLevel, per spec.md §4.1's three numbered discretisation
// requirements:
//
//	level(p) = clamp( floor( maxLevel * log2(p)/log2(pFloor) ), 0, maxLevel )
//
// `pFloor` is floorCount/total. Both log2(p) and log2(pFloor) are
// negative (p, pFloor < 1), so the ratio is positive and monotonically
// increasing as p shrinks.
func level(count, total, floorCount, maxLevel int) int {
	if count <= 0 || total <= 0 {
		return maxLevel
	}

	if count >= total {
		return 0
	}

	logP := log2Q16(uint64(count)) - log2Q16(uint64(total))
	logFloor := log2Q16(uint64(floorCount)) - log2Q16(uint64(total))

	if logFloor == 0 {
		return 0
	}

	// logP, logFloor are both < 0; the ratio is in (0, 1] for
	// count >= floorCount and above 1 (clamped below) for smaller counts
	scaled := (int64(maxLevel) * logP) / logFloor
	lvl := int(scaled)

	if lvl < 0 {
		lvl = 0
	}

	if lvl > maxLevel {
		lvl = maxLevel
	}

	return lvl
}
