package orderlist

import (
	"fmt"

	"tracker/internal/entities"
)

// Project - чистая функция: документ заявки в строку списка.
// Ошибка форматирования даты означает нарушение контракта хранилища.
func Project(doc entities.Order, formatter DateFormatter) (entities.OrderView, error) {
	when, err := formatter.Format(doc.CreatedAt)
	if err != nil {
		return entities.OrderView{}, fmt.Errorf("%w: order %q created_at: %w", ErrContractViolation, doc.ID, err)
	}

	return entities.OrderView{
		ID:          doc.ID,
		Patrimony:   doc.Patrimony,
		Description: doc.Description,
		Status:      doc.Status,
		When:        when,
	}, nil
}

// ProjectAll проецирует снимок целиком; первый битый документ бракует весь снимок.
func ProjectAll(docs []entities.Order, formatter DateFormatter) ([]entities.OrderView, error) {
	views := make([]entities.OrderView, 0, len(docs))
	for _, doc := range docs {
		view, err := Project(doc, formatter)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
