package constant

// Info panel text
const (
	TitleText       = "ASCII character table"
	DescriptionText = "The 95 ASCII printable characters."
	CharHeaderText  = "Char   Name"
	BaseHeaderText  = "Bin       Oct   Dec   Hex"
	ExitText        = "Press q to quit."
)

// QuitRune is the key that ends the session
const QuitRune = 'q'
