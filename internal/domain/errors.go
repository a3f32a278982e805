package domain

import "errors"

var (
	ErrInvalidCinema        = errors.New("invalid cinema")
	ErrInvalidMovie         = errors.New("invalid movie")
	ErrInvalidCinemaIndex   = errors.New("the cinema index provided is invalid")
	ErrInvalidMovieIndex    = errors.New("the movie index provided is invalid")
	ErrInvalidTheaterNumber = errors.New("the theater number provided is invalid")
	ErrInvalidTheaterCount  = errors.New("a cinema must keep at least one theater")
	ErrInvalidScreening     = errors.New("screening is invalid")
	ErrDuplicateCinema      = errors.New("this cinema already exists in the catalog")
	ErrDuplicateMovie       = errors.New("this movie already exists in the catalog")
	ErrDuplicateTheater     = errors.New("this theater already exists in the cinema")
	ErrMovieInUse           = errors.New("movie still has screenings scheduled")
	ErrScreeningNotFound    = errors.New("screening not found")
	ErrCinemaNotFound       = errors.New("cinema not found")
	ErrMovieNotFound        = errors.New("movie not found")
)
