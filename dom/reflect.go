package dom

var reflected = map[string]string{
	"id":        "id",
	"title":     "title",
	"style":     "style",
	"className": "class",
	"htmlFor":   "for",
	"lang":      "lang",
	"dir":       "dir",
	"href":      "href",
	"src":       "src",
	"alt":       "alt",
	"name":      "name",
}

// ReflectedAttribute returns the attribute a host property mirrors, such as
// "class" for className.
func ReflectedAttribute(property string) (string, bool) {
	a, ok := reflected[property]
	return a, ok
}
