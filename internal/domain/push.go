package domain

type Message struct {
	Title string
	Body  string
}

type PushChannel struct {
	Key  string
	Type string
}
