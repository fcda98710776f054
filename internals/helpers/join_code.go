package helper

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"

	"gorm.io/gorm"
)

const joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var ErrJoinCodeExhausted = errors.New("could not generate a unique join code")

// RandomCode menghasilkan kode acak (tanpa huruf/angka ambigu: I, O, 0, 1).
func RandomCode(n int) (string, error) {
	b := make([]byte, n)
	max := big.NewInt(int64(len(joinCodeAlphabet)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = joinCodeAlphabet[idx.Int64()]
	}
	return string(b), nil
}

// EnsureUniqueCode mencoba beberapa kali sampai kode belum dipakai di table.column.
func EnsureUniqueCode(ctx context.Context, db *gorm.DB, table, column string, length int) (string, error) {
	for attempt := 0; attempt < 8; attempt++ {
		code, err := RandomCode(length)
		if err != nil {
			return "", err
		}
		var n int64
		if err := db.WithContext(ctx).Table(table).Where(column+" = ?", code).Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return code, nil
		}
	}
	return "", ErrJoinCodeExhausted
}
