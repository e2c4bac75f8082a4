package field

// Private kinds reuse the text and number behavior wholesale; the only
// difference is display metadata and the toggleVisibility option the editor
// honors when masking the value.

func privateTextKind() Kind {
	return textKind().Derive(PrivateText, "Private Text",
		"Text that is masked in the document table", "eye-off")
}

func privateNumberKind() Kind {
	return numberKind().Derive(PrivateNumber, "Private Number",
		"A number that is masked in the document table", "eye-off")
}
