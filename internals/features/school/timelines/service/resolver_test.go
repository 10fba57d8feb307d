// file: internals/features/school/timelines/service/resolver_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "escolaviva_backend/internals/features/school/timelines/model"
	"escolaviva_backend/internals/helpers/cache"
)

type fakeStore struct {
	overrideID *uuid.UUID
	enrClassID *uuid.UUID
	defaultID  *uuid.UUID

	enrollmentErr error
	classErr      error
	templateErr   error

	enrollmentCalls int
	classCalls      int
	templateCalls   int
}

func (f *fakeStore) EnrollmentLink(_ context.Context, _ uuid.UUID) (*uuid.UUID, *uuid.UUID, error) {
	f.enrollmentCalls++
	return f.overrideID, f.enrClassID, f.enrollmentErr
}

func (f *fakeStore) ClassDefaultTemplate(_ context.Context, _ uuid.UUID) (*uuid.UUID, error) {
	f.classCalls++
	return f.defaultID, f.classErr
}

func (f *fakeStore) TemplateWithItems(_ context.Context, id uuid.UUID) (*m.TimelineTemplateModel, []m.TimelineItemModel, error) {
	f.templateCalls++
	if f.templateErr != nil {
		return nil, nil, f.templateErr
	}
	tpl := m.TimelineTemplateModel{
		TimelineTemplateID:   id,
		TimelineTemplateName: "Rotina Manhã",
	}
	items := []m.TimelineItemModel{
		{TimelineItemID: uuid.New(), TimelineItemTemplateID: id, TimelineItemTitle: "B", TimelineItemOrderIndex: 1},
		{TimelineItemID: uuid.New(), TimelineItemTemplateID: id, TimelineItemTitle: "A", TimelineItemOrderIndex: 0},
	}
	return &tpl, items, nil
}

func idPtr() *uuid.UUID {
	id := uuid.New()
	return &id
}

func TestResolveOverrideWins(t *testing.T) {
	override := idPtr()
	store := &fakeStore{overrideID: override, enrClassID: idPtr(), defaultID: idPtr()}
	r := NewResolver(store, nil)

	got := r.Resolve(context.Background(), nil, idPtr())
	require.NotNil(t, got)
	assert.Equal(t, *override, got.Template.TimelineTemplateID)
	// com override, o padrão da turma nem é consultado
	assert.Equal(t, 0, store.classCalls)
	assert.Equal(t, 1, store.enrollmentCalls)
}

func TestResolveFallsBackToClassDefault(t *testing.T) {
	def := idPtr()
	store := &fakeStore{defaultID: def}
	r := NewResolver(store, nil)

	classID := idPtr()
	got := r.Resolve(context.Background(), classID, nil)
	require.NotNil(t, got)
	assert.Equal(t, *def, got.Template.TimelineTemplateID)
	assert.Equal(t, 0, store.enrollmentCalls)
	assert.Equal(t, 1, store.classCalls)
	assert.Equal(t, *classID, *got.ClassID)
}

// Matrícula sem override adota a turma da matrícula para o fallback.
func TestResolveEnrollmentClassUsedWhenNoOverride(t *testing.T) {
	def := idPtr()
	store := &fakeStore{enrClassID: idPtr(), defaultID: def}
	r := NewResolver(store, nil)

	got := r.Resolve(context.Background(), nil, idPtr())
	require.NotNil(t, got)
	assert.Equal(t, *def, got.Template.TimelineTemplateID)
	assert.Equal(t, 1, store.classCalls)
}

// Dupla ausência (sem override e sem padrão): nil, e o template nunca é
// carregado.
func TestResolveDoubleMissIsNil(t *testing.T) {
	store := &fakeStore{enrClassID: idPtr()}
	r := NewResolver(store, nil)

	got := r.Resolve(context.Background(), nil, idPtr())
	assert.Nil(t, got)
	assert.Equal(t, 0, store.templateCalls)
}

func TestResolveNoInputsIsNil(t *testing.T) {
	store := &fakeStore{}
	r := NewResolver(store, nil)

	assert.Nil(t, r.Resolve(context.Background(), nil, nil))
	nilID := uuid.Nil
	assert.Nil(t, r.Resolve(context.Background(), &nilID, &nilID))
	assert.Equal(t, 0, store.enrollmentCalls)
	assert.Equal(t, 0, store.classCalls)
}

// Qualquer falha degrada para nil: o chamador nunca vê erro.
func TestResolveQueryErrorDegradesToNil(t *testing.T) {
	boom := errors.New("conexão caiu")

	store := &fakeStore{enrollmentErr: boom}
	assert.Nil(t, NewResolver(store, nil).Resolve(context.Background(), nil, idPtr()))

	store = &fakeStore{classErr: boom}
	assert.Nil(t, NewResolver(store, nil).Resolve(context.Background(), idPtr(), nil))

	store = &fakeStore{defaultID: idPtr(), templateErr: boom}
	assert.Nil(t, NewResolver(store, nil).Resolve(context.Background(), idPtr(), nil))
}

func TestResolveItemsSortedByOrderIndex(t *testing.T) {
	store := &fakeStore{defaultID: idPtr()}
	r := NewResolver(store, nil)

	got := r.Resolve(context.Background(), idPtr(), nil)
	require.NotNil(t, got)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "A", got.Items[0].TimelineItemTitle)
	assert.Equal(t, "B", got.Items[1].TimelineItemTitle)
}

// Hit de cache devolve o resultado sem tocar o store de novo.
func TestResolveCacheHitShortCircuits(t *testing.T) {
	store := &fakeStore{defaultID: idPtr()}
	r := NewResolver(store, cache.NewMemory())

	classID := idPtr()
	first := r.Resolve(context.Background(), classID, nil)
	require.NotNil(t, first)
	assert.Equal(t, 1, store.classCalls)

	second := r.Resolve(context.Background(), classID, nil)
	require.NotNil(t, second)
	assert.Equal(t, first.Template.TimelineTemplateID, second.Template.TimelineTemplateID)
	assert.Equal(t, 1, store.classCalls)
	assert.Equal(t, 1, store.templateCalls)
}

// Invalidação por prefixo força nova resolução no próximo acesso.
func TestResolveCacheInvalidation(t *testing.T) {
	store := &fakeStore{defaultID: idPtr()}
	c := cache.NewMemory()
	r := NewResolver(store, c)

	classID := idPtr()
	require.NotNil(t, r.Resolve(context.Background(), classID, nil))
	c.InvalidatePrefix(context.Background(), cache.ResolverPrefix())
	require.NotNil(t, r.Resolve(context.Background(), classID, nil))
	assert.Equal(t, 2, store.classCalls)
}
