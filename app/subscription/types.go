package subscription

// TypeRSS is the only subscription type passed on to aggregation.
const TypeRSS = "rss"

// Subscription is one feed listed in a subscription file.
type Subscription struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
	Type  string `yaml:"type"`
}

type yamlList struct {
	Feeds []Subscription `yaml:"feeds"`
}

type opmlDocument struct {
	Version string        `xml:"version,attr"`
	Head    opmlHead      `xml:"head"`
	Body    []opmlOutline `xml:"body>outline"`
}

type opmlHead struct {
	Title string `xml:"title"`
}

type opmlOutline struct {
	Text     string        `xml:"text,attr"`
	Title    string        `xml:"title,attr"`
	Type     string        `xml:"type,attr"`
	XMLURL   string        `xml:"xmlUrl,attr"`
	Outlines []opmlOutline `xml:"outline"`
}
