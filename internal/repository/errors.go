package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record conflict")
)

type sqlStateErr interface {
	SQLState() string
	Error() string
}

// translate memetakan error GORM/driver ke error repository. Unique violation
// dari MySQL (1062) dan Postgres (23505) sama-sama menjadi ErrConflict.
// ConnectDB memakai TranslateError, jadi cek string hanya untuk pesan
// MySQL yang tidak ikut diterjemahkan.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isDuplicateKey(err) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr sqlStateErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "Error 1062")
}
