package format

// ISODate is "u{>=4}-MM-dd": a sign on negative years and on years wider
// than 4 digits, then 2-digit month and day.
var ISODate = &Format{nodes: []node{
	NumericField{Field: FieldYear, MinWidth: 4, MaxWidth: 19, Sign: SignNegativeOnly, PlusOnOverflow: true, get: getYear},
	StringLiteral{S: "-"},
	numericField(FieldMonth, 2, 2, getMonth),
	StringLiteral{S: "-"},
	numericField(FieldDay, 2, 2, getDay),
}}

// ISOTime is "HH:mm[:ss[.fraction]]".
var ISOTime = &Format{nodes: []node{
	numericField(FieldHour, 2, 2, getHour),
	StringLiteral{S: ":"},
	numericField(FieldMinute, 2, 2, getMinute),
	Optional{
		Nodes: []node{
			StringLiteral{S: ":"},
			numericField(FieldSecond, 2, 2, getSecond),
			Optional{
				Nodes: []node{StringLiteral{S: "."}, FractionalField{MinDigits: 3, MaxDigits: 9, Grouping: true}},
			},
		},
	},
}}

// ISODateTime is ISODate, then 'T' (or 't' on parse), then ISOTime.
var ISODateTime = &Format{nodes: append(append(append([]node{}, ISODate.nodes...),
	Alternatives{
		ParseForms: [][]node{{StringLiteral{S: "T", CaseSensitive: true}}, {StringLiteral{S: "t", CaseSensitive: true}}},
		FormatForm: []node{StringLiteral{S: "T", CaseSensitive: true}},
	}),
	ISOTime.nodes...)}

// ISOOffset is "Z" for zero, else "+/-HH:MM[:SS]".
var ISOOffset = &Format{nodes: []node{OffsetNode{Kind: OffsetX, Length: 5}}}

// ISODateTimeOffset is ISODateTime followed by ISOOffset.
var ISODateTimeOffset = &Format{nodes: append(append([]node{}, ISODateTime.nodes...), ISOOffset.nodes...)}

// ISOInstant is ISODateTime followed by a compact offset: "Z" for UTC,
// otherwise "+/-HH" with minutes appended only when nonzero and no seconds
// component.
var ISOInstant = &Format{nodes: append(append([]node{}, ISODateTime.nodes...),
	OffsetNode{Kind: OffsetX, Length: 1})}
