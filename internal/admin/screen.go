package admin

import (
	"context"
	"errors"
	"sync"

	"github.com/ignatzorin/homeservices-portal/internal/fetch"
	"github.com/ignatzorin/homeservices-portal/internal/logger"
	"github.com/ignatzorin/homeservices-portal/internal/pkg/apperror"
)

// Mode — состояние экрана ресурса.
type Mode string

const (
	ModeList          Mode = "list"
	ModeCreate        Mode = "create"
	ModeEdit          Mode = "edit"
	ModeConfirmDelete Mode = "confirm_delete"
)

// ErrNoTarget — подтверждение удаления без выбранной записи.
var ErrNoTarget = errors.New("admin: запись для удаления не выбрана")

// ErrFormClosed — форма отправлена, когда её окно уже закрыто или открыто
// для другой записи (повторная отправка, вторая вкладка).
var ErrFormClosed = errors.New("admin: окно формы закрыто")

// FormClosedMessage показывается вместо повторного сохранения.
const FormClosedMessage = "This form is no longer open. Please reopen it and try again."

// View — всё, что нужно шаблону экрана.
type View[T any] struct {
	Mode      Mode
	TargetID  string
	Target    *T
	Items     []T
	Loading   bool
	ListError string
	FormError string
	Alert     string
	Notice    string
}

// Screen — единый сценарий экрана админки: список, модальное окно
// создания/редактирования, подтверждение удаления. После любой успешной
// мутации список перезагружается целиком, локально ничего не патчится.
type Screen[T any] struct {
	name string
	list *fetch.Resource[fetch.None, []T]
	find func(items []T, id string) (T, bool)

	mu         sync.Mutex
	mode       Mode
	targetID   string
	submitting bool
	formError  string
	alert      string
	notice     string
}

// NewScreen создаёт экран. find ищет запись по id в загруженном списке.
func NewScreen[T any](name string, load func(ctx context.Context) ([]T, error), find func(items []T, id string) (T, bool)) *Screen[T] {
	return &Screen[T]{
		name: name,
		list: fetch.New(name, func(ctx context.Context, _ fetch.None) ([]T, error) {
			return load(ctx)
		}),
		find: find,
		mode: ModeList,
	}
}

// Load загружает список, если он ещё не загружен.
func (s *Screen[T]) Load(ctx context.Context) {
	s.list.Load(ctx, fetch.None{})
}

// Refetch перезагружает список.
func (s *Screen[T]) Refetch(ctx context.Context) {
	s.list.Refetch(ctx)
}

func (s *Screen[T]) OpenCreate() {
	s.setMode(ModeCreate, "")
}

func (s *Screen[T]) OpenEdit(id string) {
	s.setMode(ModeEdit, id)
}

func (s *Screen[T]) AskDelete(id string) {
	s.setMode(ModeConfirmDelete, id)
}

// Close закрывает модальное окно без изменений.
func (s *Screen[T]) Close() {
	s.setMode(ModeList, "")
}

func (s *Screen[T]) setMode(mode Mode, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	s.targetID = id
	s.formError = ""
}

// Mode возвращает текущее состояние и выбранную запись.
func (s *Screen[T]) Mode() (Mode, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, s.targetID
}

// Submit выполняет сохранение из модального окна.
// formID — id записи из формы, пусто при создании; он должен совпадать с
// открытым окном, иначе возвращается ErrFormClosed и API не вызывается.
// Успех: окно закрывается и список перезагружается один раз.
// Ошибка: сообщение показывается в окне, окно остаётся открытым.
func (s *Screen[T]) Submit(ctx context.Context, formID string, save func(ctx context.Context, targetID string) error) error {
	targetID, ok := s.beginSubmit(formID)
	if !ok {
		s.setAlert(FormClosedMessage)
		logger.With("admin").WithField("screen", s.name).WithField("form_id", formID).Info("отправка закрытой формы отклонена")
		return ErrFormClosed
	}

	err := save(ctx, targetID)

	s.mu.Lock()
	s.submitting = false
	if err != nil {
		s.formError = apperror.MessageOf(err, "Operation failed")
		s.mu.Unlock()
		s.logFailure("submit", err)
		return err
	}
	s.mu.Unlock()

	s.setMode(ModeList, "")
	s.list.Refetch(ctx)
	return nil
}

// beginSubmit занимает открытое окно под одно сохранение.
func (s *Screen[T]) beginSubmit(formID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeCreate && s.mode != ModeEdit {
		return "", false
	}
	if s.submitting || formID != s.targetID {
		return "", false
	}
	s.submitting = true
	return s.targetID, true
}

// ConfirmDelete удаляет выбранную запись.
// Успех: один refetch списка. Ошибка: alert, список не меняется.
func (s *Screen[T]) ConfirmDelete(ctx context.Context, remove func(ctx context.Context, id string) error, alert string) error {
	mode, targetID := s.Mode()
	if mode != ModeConfirmDelete || targetID == "" {
		return ErrNoTarget
	}

	s.setMode(ModeList, "")

	if err := remove(ctx, targetID); err != nil {
		s.setAlert(alert)
		s.logFailure("delete", err)
		return err
	}

	s.list.Refetch(ctx)
	return nil
}

// Mutate выполняет точечное действие над строкой списка (смена статуса,
// отметка прочтения). Полная валидация формы не выполняется.
func (s *Screen[T]) Mutate(ctx context.Context, action func(ctx context.Context) error, alert string) error {
	if err := action(ctx); err != nil {
		s.setAlert(alert)
		s.logFailure("mutate", err)
		return err
	}
	s.list.Refetch(ctx)
	return nil
}

// Notify показывает одноразовое сообщение об успехе.
func (s *Screen[T]) Notify(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = msg
}

func (s *Screen[T]) setAlert(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alert = msg
}

// View возвращает состояние для шаблона. Alert и Notice показываются один раз.
func (s *Screen[T]) View() View[T] {
	snap := s.list.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	v := View[T]{
		Mode:      s.mode,
		TargetID:  s.targetID,
		Items:     snap.Data,
		Loading:   snap.Loading,
		FormError: s.formError,
		Alert:     s.alert,
		Notice:    s.notice,
	}
	if snap.Err != nil {
		v.ListError = apperror.MessageOf(snap.Err, "Failed to load "+s.name)
	}
	if s.targetID != "" && s.find != nil {
		if item, ok := s.find(snap.Data, s.targetID); ok {
			v.Target = &item
		}
	}

	s.alert = ""
	s.notice = ""
	return v
}

// Items возвращает загруженный список (может быть устаревшим после ошибки).
func (s *Screen[T]) Items() []T {
	return s.list.Snapshot().Data
}

func (s *Screen[T]) logFailure(action string, err error) {
	logger.With("admin").WithField("screen", s.name).WithField("action", action).WithError(err).Warn("действие не выполнено")
}
