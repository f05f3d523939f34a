package models

import "errors"

var (
	// ErrNotFound возвращается хранилищем, если документ с таким id отсутствует
	ErrNotFound = errors.New("document not found")
	// ErrAlreadyExists возвращается при повторной записи документа с тем же id
	ErrAlreadyExists = errors.New("document already exists")
)

// Document - сущность, хранимая в коллекции документов под строковым id
type Document interface {
	DocumentID() string
}
