package grammar

// The ABC grammar below is based on Henrik Norbeck's ABNF grammar for ABC
// v2.0, with:
//  1) corrections for its mistakes (e.g. rests could not be generated),
//  2) rearrangement of the rules necessary for PEG ordered-choice parsing,
//  3) changes to make it more compatible with the ABC v2.1 specification.
// Norbeck's grammar seems to have disappeared from its original location on
// the web, but has been available at:
//   https://web.archive.org/web/20120528143746/http://www.norbeck.nu/abc/bnf/abc20bnf.txt
//
// Rule ordering is load-bearing: alternatives that could both match a
// prefix list the more specific one first (see NoteLength), and Element
// tries BrokenRhythm before Stem so that "a>b" is not truncated at "a".

func lit(s string) Expr   { return Lit(s) }
func ref(r Rule) Expr     { return Ref(r) }
func seq(xs ...Expr) Expr { return Seq(xs) }
func ch(xs ...Expr) Expr  { return Choice(xs) }
func star(x Expr) Expr    { return Star{X: x} }
func plus(x Expr) Expr    { return Plus{X: x} }
func opt(x Expr) Expr     { return Opt{X: x} }
func not(x Expr) Expr     { return Not{X: x} }
func anyRune() Expr       { return Any{} }
func eoi() Expr           { return EOI{} }

// cls builds a Class matching any single rune of chars.
func cls(chars string) Expr {
	var c Class
	for _, r := range chars {
		c = append(c, CharRange{Lo: r, Hi: r})
	}
	return c
}

// rng builds a Class matching one rune in the inclusive range [lo, hi].
func rng(lo, hi rune) Expr {
	return Class{{Lo: lo, Hi: hi}}
}

// ABC is the tune-body grammar. Entry rule: MusicCodeLine.
var ABC = Grammar{
	MusicCodeLine: seq(ref(AbcLine), eoi()),

	AbcLine: seq(
		ch(
			seq(opt(ref(Barline)), plus(ref(Element)),
				star(seq(ref(Barline), plus(ref(Element)))), opt(ref(Barline))),
			ref(Barline),
		),
		ref(AbcEOL)),

	Element: ch(ref(BrokenRhythm), ref(Stem), ref(WSP), ref(ChordOrText),
		ref(Gracing), ref(GraceNotes), ref(Tuplet), ref(SlurBegin),
		ref(SlurEnd), ref(Rollback), ref(MultiMeasureRest), ref(MeasureRepeat),
		ref(NthRepeat), ref(EndNthRepeat), ref(InlineField),
		ref(HardLineBreak), ref(UnusedChar)),

	ChordOrText: seq(lit(`"`), ch(ref(Chord), ref(TextExpression)),
		star(seq(ref(ChordNewline), ch(ref(Chord), ref(TextExpression)))),
		lit(`"`)),

	Gracing: ch(lit("."), ref(UserdefSymbol), ref(LongGracing)),

	Note: seq(ref(Pitch), opt(ref(NoteLength)), opt(ref(Tie))),

	UnusedChar: ch(ref(ReservedChar), ref(Backquote)),

	// ==== 3.1.6 M: - meter

	Meter:    ch(ref(MeterNum), seq(cls("Cc"), opt(lit("|"))), lit("none")),
	MeterNum: seq(
		ch(
			seq(lit("("), star(ref(WSP)), ref(Digits),
				star(seq(star(ref(WSP)), lit("+"), star(ref(WSP)), ref(Digits))),
				star(ref(WSP)), lit(")")),
			seq(ref(Digits),
				star(seq(star(ref(WSP)), lit("+"), star(ref(WSP)), ref(Digits)))),
		),
		star(ref(WSP)), lit("/"), star(ref(WSP)), ref(Digits)),

	// ==== 3.1.8 Q: - tempo

	Tempo: ch(
		seq(ref(TempoSpec), opt(seq(plus(ref(WSP)), ref(TempoDesc)))),
		seq(ref(TempoDesc), opt(seq(plus(ref(WSP)), ref(TempoSpec))))),
	TempoSpec: ch(
		seq(ref(NoteLengthStrict), lit("="), ref(Digits)),
		seq(cls("Cc"), opt(ref(NoteLength)), lit("="), ref(Digits)),
		ref(Digits)),
	TempoDesc: seq(lit(`"`), star(ref(NonQuote)), lit(`"`)),

	// ==== 3.1.14 K: - key

	Key: ch(
		seq(ref(KeyDef), opt(seq(plus(ref(WSP)), ref(Clef)))),
		ref(Clef), lit("HP"), lit("Hp")),
	KeyDef: seq(ref(Basenote), opt(cls("#b♯♭")),
		opt(seq(star(ref(WSP)), ref(Mode))),
		star(seq(ref(WSP), plus(seq(star(ref(WSP)), ref(GlobalAccidental)))))),
	Mode: ch(ref(Major), ref(Lydian), ref(Ionian), ref(Mixolydian),
		ref(Dorian), ref(Aeolian), ref(Phrygian), ref(Locrian), ref(Minor),
		lit("exp")),
	Major:      seq(lit("maj"), opt(seq(lit("o"), opt(lit("r"))))),
	Lydian:     seq(lit("lyd"), opt(seq(lit("i"), opt(seq(lit("a"), opt(lit("n"))))))),
	Ionian:     seq(lit("ion"), opt(seq(lit("i"), opt(seq(lit("a"), opt(lit("n"))))))),
	Mixolydian: seq(lit("mix"), opt(seq(lit("o"), opt(seq(lit("l"), opt(seq(lit("y"), opt(seq(lit("d"), opt(seq(lit("i"), opt(seq(lit("a"), opt(lit("n"))))))))))))))),
	Dorian:     seq(lit("dor"), opt(seq(lit("i"), opt(seq(lit("a"), opt(lit("n"))))))),
	Aeolian:    seq(lit("aeo"), opt(seq(lit("l"), opt(seq(lit("i"), opt(seq(lit("a"), opt(lit("n"))))))))),
	Phrygian:   seq(lit("phr"), opt(seq(lit("y"), opt(seq(lit("g"), opt(seq(lit("i"), opt(seq(lit("a"), opt(lit("n"))))))))))),
	Locrian:    seq(lit("loc"), opt(seq(lit("r"), opt(seq(lit("i"), opt(seq(lit("a"), opt(lit("n"))))))))),
	Minor:      seq(lit("m"), opt(seq(lit("in"), opt(seq(lit("o"), opt(lit("r"))))))),

	GlobalAccidental: seq(ref(Accidental), ref(Basenote)),

	// ==== 3.2 Use of fields within the tune body

	InlineField: ch(ref(IFieldText), ref(IFieldKey), ref(IFieldLength),
		ref(IFieldMeter), ref(IFieldPart), ref(IFieldTempo),
		ref(IFieldUserdef), ref(IFieldVoice)),
	IFieldText:   seq(lit("["), cls("INRr"), lit(":"), plus(ref(NonRightBracket)), lit("]")),
	IFieldKey:    seq(lit("[K:"), star(ref(WSP)), ch(lit("none"), opt(ref(Key))), lit("]")),
	IFieldLength: seq(lit("[L:"), star(ref(WSP)), ref(NoteLengthStrict), lit("]")),
	IFieldMeter:  seq(lit("[M:"), star(ref(WSP)), ref(Meter), lit("]")),
	// ifield_part: 'P:' fields are supposed to be very structured (see
	// 3.1.9), but in the wild they are frequently abused. Accept any
	// non-']' text.
	IFieldPart:    seq(lit("[P:"), plus(ref(NonRightBracket)), lit("]")),
	IFieldTempo:   seq(lit("[Q:"), star(ref(WSP)), ref(Tempo), lit("]")),
	IFieldUserdef: seq(lit("[U:"), plus(ref(NonRightBracket)), lit("]")),
	IFieldVoice:   seq(lit("[V:"), star(ref(WSP)), ref(Voice), lit("]")),

	// ==== 4.1 Pitch

	Pitch:    seq(opt(ref(Accidental)), ref(Basenote), opt(ref(Octave))),
	Basenote: Class{{Lo: 'A', Hi: 'G'}, {Lo: 'a', Hi: 'g'}},
	Octave:   ch(plus(lit("'")), plus(lit(","))),

	// ==== 4.2 Accidentals

	Accidental: ch(lit("^^"), lit("^"), lit("__"), lit("_"), lit("=")),

	// ==== 4.3 Note lengths

	// Norbeck specified this as "(DIGITS? ('/' DIGITS)?) / '/'+", which
	// could match the empty string. NoteLength must fail if it matches
	// nothing. Things it needs to match include: '2', '/2', '3/2', '/', '//'.
	NoteLength: ch(ref(NoteLengthSmaller), ref(NoteLengthFull),
		ref(NoteLengthBigger), ref(NoteLengthSlashes)),
	NoteLengthBigger:  ref(Digits),
	NoteLengthSmaller: seq(lit("/"), ref(Digits)),
	NoteLengthFull:    seq(ref(Digits), lit("/"), ref(Digits)),
	NoteLengthSlashes: plus(lit("/")),

	// used by various fields
	NoteLengthStrict: ch(seq(ref(Digits), lit("/"), ref(Digits)), lit("1")),

	// ==== 4.4 Broken rhythm

	BrokenRhythm: seq(ref(Stem), star(ref(BrokenElem)), ref(BrokenSep),
		opt(ref(BrokenSep)), opt(ref(BrokenSep)), star(ref(BrokenElem)),
		ref(Stem)),
	BrokenSep: cls("<>"),
	BrokenElem: ch(ref(WSP), ref(ChordOrText), ref(Gracing), ref(GraceNotes),
		ref(SlurBegin), ref(SlurEnd)),

	// ==== 4.5 Rests

	Rest:             seq(cls("xyz"), opt(ref(NoteLength))),
	MultiMeasureRest: seq(lit("Z"), star(rng('0', '9'))),

	// ==== 4.6 Clefs and transposition

	Clef: seq(
		ch(ref(ClefSpec), ref(ClefMiddle), ref(ClefTranspose),
			ref(ClefOctave), ref(ClefStafflines)),
		opt(seq(plus(ref(WSP)), ref(Clef)))),
	ClefSpec: seq(
		ch(seq(lit("clef="), ch(ref(ClefNote), ref(ClefName))), ref(ClefName)),
		opt(ref(ClefLine)), opt(ch(lit("+8"), lit("-8"))),
		opt(seq(plus(ref(WSP)), ref(ClefMiddle)))),
	ClefNote:       ch(lit("G"), lit("C"), lit("F"), lit("P")), // non-standard, from Norbeck
	ClefName:       ch(lit("treble"), lit("alto"), lit("tenor"), lit("bass"), lit("perc"), lit("none")),
	ClefLine:       rng('1', '5'),
	ClefMiddle:     seq(lit("middle="), ref(Basenote), opt(ref(Octave))),
	ClefTranspose:  seq(lit("transpose="), opt(lit("-")), ref(Digits)),
	ClefOctave:     seq(lit("octave="), opt(lit("-")), ref(Digits)),
	ClefStafflines: seq(lit("stafflines="), ref(Digits)),

	// ==== 4.7 Beams

	// used to increase legibility in groups of beamed notes, otherwise meaningless
	Backquote: lit("`"),

	// ==== 4.8 Repeat/bar symbols

	Barline: ch(
		ref(InvisibleBarline),
		seq(star(lit(":")), opt(lit("[")), plus(seq(opt(lit(".")), lit("|"))),
			opt(ch(lit("]"), plus(lit(":")), ref(NthRepeatNum)))),
		ref(DoubleRepeatBarline), ref(DashedBarline)),
	InvisibleBarline:    ch(lit("[|]"), lit("[]")), // second is non-standard, from Norbeck
	DoubleRepeatBarline: lit("::"),
	DashedBarline:       lit(":"), // non-standard, from Norbeck

	// ==== 4.9 First and second repeats

	NthRepeat:    seq(lit("["), ch(ref(NthRepeatNum), ref(NthRepeatText))),
	NthRepeatNum: seq(ref(Digits), star(seq(cls(",-"), ref(Digits)))),
	NthRepeatText: seq(lit(`"`), star(ref(NonQuote)), lit(`"`)), // from Norbeck, not in the standard?
	EndNthRepeat: lit("]"),

	// ==== 4.11 Ties and slurs

	// see '4.20 Order of abc constructs' for more on ties
	Tie:       lit("-"),
	SlurBegin: lit("("),
	SlurEnd:   lit(")"),

	// ==== 4.12 Grace notes

	GraceNotes: seq(lit("{"), opt(ref(Acciaccatura)), plus(ref(GraceNoteStem)), lit("}")),
	// bracket groups are from Norbeck; non-standard extension
	GraceNoteStem: ch(ref(GraceNote),
		seq(lit("["), ref(GraceNote), plus(ref(GraceNote)), lit("]"))),
	GraceNote:    seq(ref(Pitch), opt(ref(NoteLength))),
	Acciaccatura: lit("/"),

	// ==== 4.13 Duplets, triplets, quadruplets, etc.

	// Norbeck included two or more elements as part of the tuplet, but here
	// we'd need to tell the parser to match as many elements as the value
	// of the first DIGITS.
	Tuplet: seq(lit("("), ref(Digits),
		opt(seq(lit(":"), opt(ref(Digits)), lit(":"), opt(ref(Digits))))),

	// ==== 4.14 Decorations

	LongGracing: ch(
		seq(lit("!"),
			ch(ref(Gracing1), ref(Gracing2), ref(Gracing3),
				ref(GracingNonstandard), ref(Gracing4)),
			lit("!")),
		seq(lit("!"), ref(GracingCatchall), lit("!"))),
	Gracing1: ch(lit("<("), lit("<)"), lit(">("), lit(">)"), lit("D.C."),
		lit("D.S."), lit("accent"), lit("arpeggio"), lit("breath"),
		lit("coda"), lit("crescendo("), lit("crescendo)"), lit("dacapo"),
		lit("dacoda"), lit("diminuendo(")),
	Gracing2: ch(lit("diminuendo)"), lit("downbow"), lit("emphasis"),
		lit("fermata"), lit("ffff"), lit("fff"), lit("ff"), lit("fine"),
		lit("invertedfermata"), lit("invertedturnx"), lit("invertedturn"),
		lit("longphrase"), lit("lowermordent")),
	Gracing3: ch(lit("mediumphrase"), lit("mf"), lit("mordent"), lit("mp"),
		lit("open"), lit("plus"), lit("pppp"), lit("ppp"), lit("pp"),
		lit("pralltriller"), lit("roll"), lit("segno"), lit("sfz"),
		lit("shortphrase"), lit("slide"), lit("snap")),
	Gracing4: ch(lit("tenuto"), lit("thumb"), lit("trill("), lit("trill)"),
		lit("trill"), lit("turnx"), lit("turn"), lit("upbow"),
		lit("uppermordent"), lit("wedge"), lit("+"), rng('0', '5'),
		lit("<"), lit(">"), lit("f"), lit("p")),
	GracingNonstandard: ch(lit("cresc"), lit("decresc"), lit("dimin"),
		lit("fp"), seq(lit("repeatbar"), ref(Digits))), // non-standard, from Norbeck
	GracingCatchall: plus(rng('"', '~')), // catch-all for non-standard ABC

	// ==== 4.16 Redefinable symbols

	// Norbeck includes non-standard 'X' and 'Y'
	UserdefSymbol: ch(lit("~"), rng('H', 'Y'), rng('h', 'w')),

	// ==== 4.17 Chords and unisons

	// Norbeck used "chord" for chord symbols, and "stem" for what the ABC
	// standard calls chords.
	Stem: ch(
		seq(lit("["), ref(Note), plus(ref(Note)), lit("]"), opt(ref(Tie))),
		ref(Note), ref(Rest)),

	// ==== 4.18 Chord symbols

	// NonQuote is a catch-all for non-conforming ABC (in practice, people
	// sometimes confuse the chord symbol and annotation syntaxes). Norbeck's
	// grammar let it eat everything else between the quotes; here a negative
	// lookahead makes sure it doesn't eat a ChordNewline.
	Chord: seq(ref(Basenote), opt(ref(ChordAccidental)), opt(ref(ChordType)),
		opt(seq(lit("/"), ref(Basenote), opt(ref(ChordAccidental)))),
		star(seq(not(ref(ChordNewline)), ref(NonQuote)))),

	// the last three are U+266F sharp, U+266D flat, and U+266E natural
	ChordAccidental: ch(lit("#"), lit("b"), lit("="), lit("♯"), lit("♭"), lit("♮")),

	// chord type, e.g. m, min, maj7, dim, sus4: "programs should treat
	// chord symbols quite liberally"
	ChordType: plus(ch(rng('A', 'Z'), rng('a', 'z'), plus(rng('0', '9')), lit("-"))),

	// ==== 4.19 Annotations

	TextExpression: ch(
		seq(cls("^<>_@"), plus(seq(not(ref(ChordNewline)), ref(NonQuote)))),
		ref(BadTextExpression)),
	BadTextExpression: plus(seq(not(ref(ChordNewline)), ref(NonQuote))), // no leading placement symbol

	// ==== 6.1.1 Typesetting linebreaks

	// this would include comments, if the caller did not strip them already
	AbcEOL:           seq(opt(ref(LineContinuation)), star(ref(WSP))),
	LineContinuation: lit(`\`),

	HardLineBreak: ch(lit("$"), lit("!")),

	// ==== 7. Multiple voices

	Voice: seq(
		plus(seq(not(cls(" ]")), anyRune())),
		star(seq(plus(ref(WSP)),
			plus(seq(not(cls(" =]")), anyRune())), lit("="),
			ch(
				seq(lit(`"`), star(ref(NonQuote)), lit(`"`)),
				plus(seq(not(cls(" ]")), anyRune())))))),

	// ==== 7.4 Voice overlay

	Rollback: lit("&"),

	// ==== 8.1 Tune body

	ReservedChar: cls("#*;?@"),

	// ==== utility rules

	ChordNewline:    ch(lit(`\n`), lit(";")), // from Norbeck; non-standard extension
	MeasureRepeat:   seq(lit("/"), opt(lit("/"))), // from Norbeck; non-standard extension
	NonQuote:        seq(not(lit(`"`)), anyRune()),
	NonRightBracket: seq(not(lit("]")), anyRune()),
	Digits:          plus(rng('0', '9')),
	WSP:             plus(cls(" \t")), // whitespace, consumed as a run
}
