package service

import "errors"

var (
	// ErrAsteroidNotFound - объекта нет ни в базе, ни в каталоге
	ErrAsteroidNotFound = errors.New("asteroid not found")
	// ErrInvalidDateRange - некорректный интервал синхронизации
	ErrInvalidDateRange = errors.New("invalid date range")
	// ErrIncompleteRecord - в записи каталога не хватает данных для оценки
	ErrIncompleteRecord = errors.New("asteroid record lacks data required for assessment")
	// ErrInvalidParams - некорректные параметры запроса к сервису
	ErrInvalidParams = errors.New("invalid parameters")
)
