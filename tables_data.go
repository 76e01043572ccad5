// Hand-curated bootstrap subset of LineBreak.txt and
// DerivedGeneralCategory.txt, in the shape gen_linebreak.go would emit
// from a full UCD checkout — see that file's doc comment. It covers
// ASCII, Latin-1, the general punctuation and combining-mark blocks,
// Hangul Jamo, the CJK ideographic blocks, and the emoji and Regional
// Indicator ranges this package's tests exercise. Rows must stay sorted
// by lo and non-overlapping; regenerating via gen_linebreak.go against a
// real UCD checkout is the reliable way to extend or re-sort this table.

package linebreak

// lbRanges must stay sorted by lo and non-overlapping; table.go binary
// searches it.
var lbRanges = []lbRange{
	{0x0000, 0x0008, CM, gcCc},
	{0x000B, 0x000B, BK, gcCc},
	{0x000C, 0x000C, BK, gcCc},
	{0x000E, 0x001F, CM, gcCc},
	{0x0021, 0x0021, EX, gcPo},
	{0x0022, 0x0022, QU, gcPo},
	{0x0024, 0x0024, PR, gcSc},
	{0x0025, 0x0025, PO, gcPo},
	{0x0027, 0x0027, QU, gcPo},
	{0x0028, 0x0028, OP, gcPs},
	{0x0029, 0x0029, CP, gcPe},
	{0x002C, 0x002C, IS, gcPo},
	{0x002D, 0x002D, HY, gcPd},
	{0x002E, 0x002E, IS, gcPo},
	{0x002F, 0x002F, SY, gcPo},
	{0x003A, 0x003A, IS, gcPo},
	{0x003B, 0x003B, IS, gcPo},
	{0x005B, 0x005B, OP, gcPs},
	{0x005D, 0x005D, CP, gcPe},
	{0x007B, 0x007B, OP, gcPs},
	{0x007D, 0x007D, CL, gcPe},
	{0x007F, 0x007F, CM, gcCc},
	{0x0085, 0x0085, NL, gcCc},
	{0x00A0, 0x00A0, GL, gcZs},
	{0x00AD, 0x00AD, BA, gcCf},
	{0x00B7, 0x00B7, NS, gcPo},
	{0x0300, 0x036F, CM, gcMn},
	{0x0591, 0x05BD, CM, gcMn},
	{0x05D0, 0x05EA, HL, gcLo},
	{0x0E01, 0x0E3A, SA, gcLo},
	{0x0E81, 0x0EDF, SA, gcLo},
	{0x1100, 0x115F, JL, gcLo},
	{0x1160, 0x11A7, JV, gcLo},
	{0x11A8, 0x11FF, JT, gcLo},
	{0x2007, 0x2007, GL, gcZs},
	{0x200B, 0x200B, ZW, gcCf},
	{0x200D, 0x200D, ZWJ, gcCf},
	{0x2014, 0x2014, B2, gcPd},
	{0x2018, 0x2018, QU, gcPi},
	{0x2019, 0x2019, QU, gcPf},
	{0x201C, 0x201C, QU, gcPi},
	{0x201D, 0x201D, QU, gcPf},
	{0x2026, 0x2026, IN, gcPo},
	{0x2028, 0x2028, BK, gcZl},
	{0x2029, 0x2029, BK, gcZp},
	{0x231A, 0x231B, ID, gcSo},
	{0x2E80, 0x2EFF, ID, gcSo},
	{0x3000, 0x3000, ID, gcZs},
	{0x3005, 0x3005, NS, gcLm},
	{0x3040, 0x3040, ID, gcLo},
	{0x3041, 0x3041, CJ, gcLo},
	{0x3042, 0x309F, ID, gcLo},
	{0x30A0, 0x30FF, ID, gcLo},
	{0x3400, 0x4DBF, ID, gcLo},
	{0x4E00, 0x9FFF, ID, gcLo},
	{0xD800, 0xDFFF, SG, gcCs},
	{0xFE0E, 0xFE0F, CM, gcMn},
	{0xFEFF, 0xFEFF, WJ, gcCf},
	{0xFFFC, 0xFFFC, CB, gcSo},
	{0x1F1E6, 0x1F1FF, RI, gcSo},
	{0x1F3FB, 0x1F3FF, EM, gcSk},
	{0x1F466, 0x1F469, EB, gcSo},
	{0x20000, 0x2A6DF, ID, gcLo},
}
