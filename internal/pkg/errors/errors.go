package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок авторизации (неверный токен, нет прав).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden используется, когда у пользователя недостаточно прав для действия
	// (например, попытка удалить чужую запись истории).
	ErrForbidden = errors.New("forbidden")

	// ErrValidation используется для ошибок валидации входных данных
	// (например, ответ короче минимальной длины).
	ErrValidation = errors.New("validation failed")

	// ErrOutOfRange используется при обращении к сессии теста вне её жизненного цикла:
	// запрос текущего вопроса или отправка ответа после завершения сессии.
	// Такая ошибка должна падать громко, а не возвращать устаревшие данные.
	ErrOutOfRange = errors.New("session position out of range")

	// ErrConflict используется для конфликтов состояния (например, попытка начать
	// новую сессию, когда предыдущая ещё не завершена).
	ErrConflict = errors.New("resource state conflict")

	// ErrPersistence используется, когда хранилище истории недоступно.
	// Результаты при этом не теряются молча: ошибка обязана дойти до пользователя.
	ErrPersistence = errors.New("persistence failed")
)
