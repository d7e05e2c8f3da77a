package grammar

// Rule identifies a named grammar rule. Rule names follow the ABC v2.1
// specification sections they were transcribed from.
type Rule int

const (
	MusicCodeLine Rule = iota
	AbcLine
	Element
	ChordOrText
	Gracing
	Note
	UnusedChar

	// 3.1.6 M: - meter
	Meter
	MeterNum

	// 3.1.8 Q: - tempo
	Tempo
	TempoSpec
	TempoDesc

	// 3.1.14 K: - key
	Key
	KeyDef
	Mode
	Major
	Lydian
	Ionian
	Mixolydian
	Dorian
	Aeolian
	Phrygian
	Locrian
	Minor
	GlobalAccidental

	// 3.2 fields within the tune body
	InlineField
	IFieldText
	IFieldKey
	IFieldLength
	IFieldMeter
	IFieldPart
	IFieldTempo
	IFieldUserdef
	IFieldVoice

	// 4.1 pitch
	Pitch
	Basenote
	Octave

	// 4.2 accidentals
	Accidental

	// 4.3 note lengths
	NoteLength
	NoteLengthBigger
	NoteLengthSmaller
	NoteLengthFull
	NoteLengthSlashes
	NoteLengthStrict

	// 4.4 broken rhythm
	BrokenRhythm
	BrokenSep
	BrokenElem

	// 4.5 rests
	Rest
	MultiMeasureRest

	// 4.6 clefs and transposition
	Clef
	ClefSpec
	ClefNote
	ClefName
	ClefLine
	ClefMiddle
	ClefTranspose
	ClefOctave
	ClefStafflines

	// 4.7 beams
	Backquote

	// 4.8 repeat/bar symbols
	Barline
	InvisibleBarline
	DoubleRepeatBarline
	DashedBarline

	// 4.9 first and second repeats
	NthRepeat
	NthRepeatNum
	NthRepeatText
	EndNthRepeat

	// 4.11 ties and slurs
	Tie
	SlurBegin
	SlurEnd

	// 4.12 grace notes
	GraceNotes
	GraceNoteStem
	GraceNote
	Acciaccatura

	// 4.13 duplets, triplets, quadruplets, etc.
	Tuplet

	// 4.14 decorations
	LongGracing
	Gracing1
	Gracing2
	Gracing3
	Gracing4
	GracingNonstandard
	GracingCatchall

	// 4.16 redefinable symbols
	UserdefSymbol

	// 4.17 chords and unisons
	Stem

	// 4.18 chord symbols
	Chord
	ChordAccidental
	ChordType

	// 4.19 annotations
	TextExpression
	BadTextExpression

	// 6.1.1 typesetting linebreaks
	AbcEOL
	LineContinuation
	HardLineBreak

	// 7 multiple voices
	Voice

	// 7.4 voice overlay
	Rollback

	// 8.1 tune body
	ReservedChar

	// utility rules
	ChordNewline
	MeasureRepeat
	NonQuote
	NonRightBracket
	Digits
	WSP

	numRules
)

var ruleNames = [numRules]string{
	MusicCodeLine:       "music_code_line",
	AbcLine:             "abc_line",
	Element:             "element",
	ChordOrText:         "chord_or_text",
	Gracing:             "gracing",
	Note:                "note",
	UnusedChar:          "unused_char",
	Meter:               "meter",
	MeterNum:            "meter_num",
	Tempo:               "tempo",
	TempoSpec:           "tempo_spec",
	TempoDesc:           "tempo_desc",
	Key:                 "key",
	KeyDef:              "key_def",
	Mode:                "mode",
	Major:               "major",
	Lydian:              "lydian",
	Ionian:              "ionian",
	Mixolydian:          "mixolydian",
	Dorian:              "dorian",
	Aeolian:             "aeolian",
	Phrygian:            "phrygian",
	Locrian:             "locrian",
	Minor:               "minor",
	GlobalAccidental:    "global_accidental",
	InlineField:         "inline_field",
	IFieldText:          "ifield_text",
	IFieldKey:           "ifield_key",
	IFieldLength:        "ifield_length",
	IFieldMeter:         "ifield_meter",
	IFieldPart:          "ifield_part",
	IFieldTempo:         "ifield_tempo",
	IFieldUserdef:       "ifield_userdef",
	IFieldVoice:         "ifield_voice",
	Pitch:               "pitch",
	Basenote:            "basenote",
	Octave:              "octave",
	Accidental:          "accidental",
	NoteLength:          "note_length",
	NoteLengthBigger:    "note_length_bigger",
	NoteLengthSmaller:   "note_length_smaller",
	NoteLengthFull:      "note_length_full",
	NoteLengthSlashes:   "note_length_slashes",
	NoteLengthStrict:    "note_length_strict",
	BrokenRhythm:        "broken_rhythm",
	BrokenSep:           "b_sep",
	BrokenElem:          "b_elem",
	Rest:                "rest",
	MultiMeasureRest:    "multi_measure_rest",
	Clef:                "clef",
	ClefSpec:            "clef_spec",
	ClefNote:            "clef_note",
	ClefName:            "clef_name",
	ClefLine:            "clef_line",
	ClefMiddle:          "clef_middle",
	ClefTranspose:       "clef_transpose",
	ClefOctave:          "clef_octave",
	ClefStafflines:      "clef_stafflines",
	Backquote:           "backquote",
	Barline:             "barline",
	InvisibleBarline:    "invisible_barline",
	DoubleRepeatBarline: "double_repeat_barline",
	DashedBarline:       "dashed_barline",
	NthRepeat:           "nth_repeat",
	NthRepeatNum:        "nth_repeat_num",
	NthRepeatText:       "nth_repeat_text",
	EndNthRepeat:        "end_nth_repeat",
	Tie:                 "tie",
	SlurBegin:           "slur_begin",
	SlurEnd:             "slur_end",
	GraceNotes:          "grace_notes",
	GraceNoteStem:       "grace_note_stem",
	GraceNote:           "grace_note",
	Acciaccatura:        "acciaccatura",
	Tuplet:              "tuplet",
	LongGracing:         "long_gracing",
	Gracing1:            "gracing1",
	Gracing2:            "gracing2",
	Gracing3:            "gracing3",
	Gracing4:            "gracing4",
	GracingNonstandard:  "gracing_nonstandard",
	GracingCatchall:     "gracing_catchall",
	UserdefSymbol:       "userdef_symbol",
	Stem:                "stem",
	Chord:               "chord",
	ChordAccidental:     "chord_accidental",
	ChordType:           "chord_type",
	TextExpression:      "text_expression",
	BadTextExpression:   "bad_text_expression",
	AbcEOL:              "abc_eol",
	LineContinuation:    "line_continuation",
	HardLineBreak:       "hard_line_break",
	Voice:               "voice",
	Rollback:            "rollback",
	ReservedChar:        "reserved_char",
	ChordNewline:        "chord_newline",
	MeasureRepeat:       "measure_repeat",
	NonQuote:            "non_quote",
	NonRightBracket:     "non_right_bracket",
	Digits:              "DIGITS",
	WSP:                 "WSP",
}

// NumRules is the number of defined rules.
const NumRules = int(numRules)

func (r Rule) String() string {
	if r < 0 || r >= numRules {
		return "invalid"
	}
	return ruleNames[r]
}
