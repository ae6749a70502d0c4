package tags

// Entry is one match from the tag index. It is a value type: equality is
// by full field tuple, which also makes it usable as a cache key.
type Entry struct {
	Name      string
	File      string
	Pattern   string
	Line      int
	Kind      byte
	FileScope bool
}

// KindFile marks whole-file tags, which have no meaningful context line.
const KindFile = 'F'

// KindDescriptions maps the common exuberant-ctags kind codes to short
// descriptions. The table is advisory: filters accept any kind character,
// known or not.
var KindDescriptions = map[byte]string{
	'c': "class",
	'd': "macro definition",
	'e': "enumerator",
	'f': "function",
	'F': "file",
	'g': "enumeration",
	'm': "member",
	'n': "namespace",
	'p': "prototype",
	's': "structure",
	't': "typedef",
	'u': "union",
	'v': "variable",
	'x': "external variable",
}
