package jwtx

import "errors"

var (
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrIssuer      = errors.New("jwtx: unexpected issuer")
	ErrUnknownKID  = errors.New("jwtx: unknown key id")
	ErrMalformed   = errors.New("jwtx: malformed token")
)
