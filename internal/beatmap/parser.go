package beatmap

type Parser interface {
	Parse(file string) (*Chart, error)
}
