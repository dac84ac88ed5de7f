package script

func name(s string) *string {
	return &s
}

// Demo returns the demonstration document: a nested object holding one
// pair of each kind, a plain pair, and a named array holding an array of
// each kind of value and an object. The literal pairs and values carry a
// payload that must not show up in the output.
func Demo() *Script {
	const ignored = "ERROR IF YOU SEE THIS"
	return &Script{
		Steps: []Step{
			{Op: OpStartObject},
			{Op: OpStartObject, Name: name("Gooble")},
			{Op: OpPair, Name: name("Awesome"), Kind: "string", Value: "Possum"},
			{Op: OpPair, Name: name("Answer"), Kind: "number", Value: "42"},
			{Op: OpPair, Name: name("Incredible"), Kind: "true", Value: ignored},
			{Op: OpPair, Name: name("Redundant"), Kind: "false", Value: ignored},
			{Op: OpPair, Name: name("DBA Word"), Kind: "null", Value: ignored},
			{Op: OpEnd},
			{Op: OpPair, Name: name("Another"), Kind: "string", Value: "Element"},
			{Op: OpStartArray, Name: name("Arrrr-EH?")},
			{Op: OpStartArray},
			{Op: OpValue, Kind: "string", Value: "Possum"},
			{Op: OpValue, Kind: "number", Value: "42"},
			{Op: OpValue, Kind: "true", Value: ignored},
			{Op: OpValue, Kind: "false", Value: ignored},
			{Op: OpValue, Kind: "null", Value: ignored},
			{Op: OpEnd},
			{Op: OpStartObject},
			{Op: OpStartObject, Name: name("Objectify this")},
			{Op: OpPair, Name: name("Luggage combo"), Kind: "number", Value: "12345"},
			{Op: OpEndFile},
		},
	}
}
