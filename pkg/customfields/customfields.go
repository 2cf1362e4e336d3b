// Пакет customfields содержит конструкторы запросов для кастомных полей досок
// и хелперы для их значений. Все функции синхронные и не обращаются к сети.
// Поиск опций, связей и участников возвращает NotFound ошибку из apierrors.
package customfields

import (
	"crypto/md5"
	"encoding/hex"
	"slices"
	"strconv"
	"time"

	"github.com/aisa-it/vaiz.go/pkg/apierrors"
	"github.com/aisa-it/vaiz.go/pkg/models"
)

// SelectOption опция select-поля. Если ID не задан, он вычисляется как первые
// 24 символа md5 от названия.
type SelectOption struct {
	ID    string
	Title string
	Color models.Color
	Icon  models.Icon
}

func NewSelectOption(title string, color models.Color, icon models.Icon, optionID ...string) SelectOption {
	o := SelectOption{Title: title, Color: color, Icon: icon}
	if len(optionID) > 0 && optionID[0] != "" {
		o.ID = optionID[0]
	} else {
		o.ID = OptionID(title)
	}
	return o
}

func OptionID(title string) string {
	sum := md5.Sum([]byte(title))
	return hex.EncodeToString(sum[:])[:24]
}

// Map представление опции в запросе API
func (o SelectOption) Map() map[string]any {
	return map[string]any{
		"_id":   o.ID,
		"title": o.Title,
		"color": o.Color,
		"icon":  o.Icon,
	}
}

func makeField(fieldType models.CustomFieldType, name, boardID, description string, hidden bool) models.CreateBoardCustomFieldRequest {
	return models.CreateBoardCustomFieldRequest{
		Name:        name,
		Type:        fieldType,
		BoardID:     boardID,
		Description: description,
		Hidden:      hidden,
	}
}

func TextField(name, boardID, description string, hidden bool) models.CreateBoardCustomFieldRequest {
	return makeField(models.FieldText, name, boardID, description, hidden)
}

func NumberField(name, boardID, description string, hidden bool) models.CreateBoardCustomFieldRequest {
	return makeField(models.FieldNumber, name, boardID, description, hidden)
}

func CheckboxField(name, boardID, description string, hidden bool) models.CreateBoardCustomFieldRequest {
	return makeField(models.FieldCheckbox, name, boardID, description, hidden)
}

func DateField(name, boardID, description string, hidden bool) models.CreateBoardCustomFieldRequest {
	return makeField(models.FieldDate, name, boardID, description, hidden)
}

func MemberField(name, boardID, description string, hidden bool) models.CreateBoardCustomFieldRequest {
	return makeField(models.FieldMember, name, boardID, description, hidden)
}

func TaskRelationsField(name, boardID, description string, hidden bool) models.CreateBoardCustomFieldRequest {
	return makeField(models.FieldTaskRelations, name, boardID, description, hidden)
}

func URLField(name, boardID, description string, hidden bool) models.CreateBoardCustomFieldRequest {
	return makeField(models.FieldUrl, name, boardID, description, hidden)
}

func SelectField(name, boardID string, options []SelectOption, description string, hidden bool) models.CreateBoardCustomFieldRequest {
	r := makeField(models.FieldSelect, name, boardID, description, hidden)
	r.Options = make([]map[string]any, 0, len(options))
	for _, o := range options {
		r.Options = append(r.Options, o.Map())
	}
	return r
}

// AddSelectOption добавляет опцию в конец существующего списка
func AddSelectOption(fieldID, boardID string, option SelectOption, existing []map[string]any) (models.EditBoardCustomFieldRequest, error) {
	if option.Title == "" {
		return models.EditBoardCustomFieldRequest{}, apierrors.ErrInvalidOption
	}
	options := append(slices.Clone(existing), option.Map())
	return models.EditBoardCustomFieldRequest{FieldID: fieldID, BoardID: boardID, Options: options}, nil
}

// RemoveSelectOption удаляет опцию по _id
func RemoveSelectOption(fieldID, boardID, optionID string, existing []map[string]any) (models.EditBoardCustomFieldRequest, error) {
	options := slices.DeleteFunc(slices.Clone(existing), func(o map[string]any) bool {
		return optionIDOf(o) == optionID
	})
	if len(options) == len(existing) {
		return models.EditBoardCustomFieldRequest{}, apierrors.ErrOptionNotFound.WithFormattedMessage(optionID)
	}
	return models.EditBoardCustomFieldRequest{FieldID: fieldID, BoardID: boardID, Options: options}, nil
}

// EditSelectOption заменяет опцию, сохраняя ее _id
func EditSelectOption(fieldID, boardID, optionID string, updated SelectOption, existing []map[string]any) (models.EditBoardCustomFieldRequest, error) {
	updated.ID = optionID
	idx := slices.IndexFunc(existing, func(o map[string]any) bool {
		return optionIDOf(o) == optionID
	})
	if idx < 0 {
		return models.EditBoardCustomFieldRequest{}, apierrors.ErrOptionNotFound.WithFormattedMessage(optionID)
	}
	options := slices.Clone(existing)
	options[idx] = updated.Map()
	return models.EditBoardCustomFieldRequest{FieldID: fieldID, BoardID: boardID, Options: options}, nil
}

func optionIDOf(o map[string]any) string {
	id, _ := o["_id"].(string)
	return id
}

func EditFieldName(fieldID, boardID, name string) models.EditBoardCustomFieldRequest {
	return models.EditBoardCustomFieldRequest{FieldID: fieldID, BoardID: boardID, Name: &name}
}

func EditFieldDescription(fieldID, boardID, description string) models.EditBoardCustomFieldRequest {
	return models.EditBoardCustomFieldRequest{FieldID: fieldID, BoardID: boardID, Description: &description}
}

func EditFieldVisibility(fieldID, boardID string, hidden bool) models.EditBoardCustomFieldRequest {
	return models.EditBoardCustomFieldRequest{FieldID: fieldID, BoardID: boardID, Hidden: &hidden}
}

// EditFieldComplete меняет несколько свойств сразу, nil поля не передаются
func EditFieldComplete(fieldID, boardID string, name, description *string, hidden *bool, options []map[string]any) models.EditBoardCustomFieldRequest {
	return models.EditBoardCustomFieldRequest{
		FieldID:     fieldID,
		BoardID:     boardID,
		Name:        name,
		Description: description,
		Hidden:      hidden,
		Options:     options,
	}
}

// AddTaskRelation добавляет связь, если ее еще нет
func AddTaskRelation(current []string, taskID string) []string {
	if slices.Contains(current, taskID) {
		return current
	}
	return append(slices.Clone(current), taskID)
}

func RemoveTaskRelation(current []string, taskID string) ([]string, error) {
	if !slices.Contains(current, taskID) {
		return current, apierrors.ErrTaskRelationNotFound.WithFormattedMessage(taskID)
	}
	return slices.DeleteFunc(slices.Clone(current), func(id string) bool { return id == taskID }), nil
}

// AddMember значение поля Member может быть строкой или массивом строк
func AddMember(current any, memberID string) []string {
	members := memberList(current)
	if slices.Contains(members, memberID) {
		return members
	}
	return append(members, memberID)
}

// RemoveMember возвращает строку, если остался один участник, иначе массив.
func RemoveMember(current any, memberID string) (any, error) {
	members := memberList(current)
	if !slices.Contains(members, memberID) {
		return current, apierrors.ErrMemberNotFound.WithFormattedMessage(memberID)
	}
	members = slices.DeleteFunc(members, func(id string) bool { return id == memberID })
	switch len(members) {
	case 0:
		return []string{}, nil
	case 1:
		return members[0], nil
	}
	return members, nil
}

func memberList(v any) []string {
	switch m := v.(type) {
	case string:
		if m == "" {
			return []string{}
		}
		return []string{m}
	case []string:
		return slices.Clone(m)
	case []any:
		out := make([]string, 0, len(m))
		for _, s := range m {
			if str, ok := s.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return []string{}
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DateValue время в ISO формате с миллисекундами в UTC
func DateValue(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

func DateRangeValue(start, end time.Time) DateRange {
	return DateRange{Start: DateValue(start), End: DateValue(end)}
}

func TextValue(s string) string { return s }

func NumberValue(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func CheckboxValue(checked bool) string {
	return strconv.FormatBool(checked)
}

func URLValue(u string) string { return u }

// FieldValue значение кастомного поля задачи
func FieldValue(fieldID string, value any) models.CustomField {
	return models.CustomField{ID: fieldID, Value: value}
}
