// file: internals/features/school/timelines/service/resolver.go
package service

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	m "escolaviva_backend/internals/features/school/timelines/model"
	"escolaviva_backend/internals/helpers/cache"
)

/* =========================
   Store (acesso a dados)
========================= */

// Store isola as consultas da cadeia de resolução; a implementação GORM vive
// em store_gorm.go e os testes usam um fake.
type Store interface {
	// EnrollmentLink devolve o override da matrícula (se houver) e a turma dela.
	EnrollmentLink(ctx context.Context, enrollmentID uuid.UUID) (overrideID, classID *uuid.UUID, err error)
	// ClassDefaultTemplate devolve o template padrão da turma (se houver).
	ClassDefaultTemplate(ctx context.Context, classID uuid.UUID) (*uuid.UUID, error)
	// TemplateWithItems carrega o template completo com seus itens.
	TemplateWithItems(ctx context.Context, templateID uuid.UUID) (*m.TimelineTemplateModel, []m.TimelineItemModel, error)
}

// ResolvedTimeline é o resultado da cadeia: template governante + itens na
// ordem persistida (order_index asc).
type ResolvedTimeline struct {
	Template m.TimelineTemplateModel `json:"template"`
	Items    []m.TimelineItemModel   `json:"items"`
	// ClassID adotado da matrícula quando o chamador não informou a turma.
	ClassID *uuid.UUID `json:"class_id,omitempty"`
}

/* =========================
   Resolver
========================= */

type Resolver struct {
	store Store
	cache cache.Cache
	ttl   time.Duration
}

func NewResolver(store Store, c cache.Cache) *Resolver {
	return &Resolver{store: store, cache: c, ttl: 5 * time.Minute}
}

// Resolve aplica a cadeia de fallback: override da matrícula → padrão da
// turma → nada. Qualquer falha de consulta é logada e degrada para "sem
// timeline"; o chamador nunca recebe erro.
func (r *Resolver) Resolve(ctx context.Context, classID, enrollmentID *uuid.UUID) *ResolvedTimeline {
	classID = normalizeID(classID)
	enrollmentID = normalizeID(enrollmentID)
	if classID == nil && enrollmentID == nil {
		return nil
	}

	key := cache.ResolverKey(enrollmentID, classID)
	if r.cache != nil {
		if raw, ok := r.cache.Get(ctx, key); ok {
			var rt ResolvedTimeline
			if err := sonic.UnmarshalString(raw, &rt); err == nil {
				return &rt
			}
		}
	}

	var templateID *uuid.UUID
	effClass := classID

	if enrollmentID != nil {
		override, enrClass, err := r.store.EnrollmentLink(ctx, *enrollmentID)
		if err != nil {
			log.Printf("[ERROR] timeline resolver: enrollment %s: %v", enrollmentID, err)
			return nil
		}
		templateID = normalizeID(override)
		if effClass == nil {
			effClass = normalizeID(enrClass)
		}
	}

	if templateID == nil && effClass != nil {
		def, err := r.store.ClassDefaultTemplate(ctx, *effClass)
		if err != nil {
			log.Printf("[ERROR] timeline resolver: class %s: %v", effClass, err)
			return nil
		}
		templateID = normalizeID(def)
	}

	// Sem vínculo algum: não é erro, simplesmente não há timeline.
	if templateID == nil {
		return nil
	}

	tpl, items, err := r.store.TemplateWithItems(ctx, *templateID)
	if err != nil || tpl == nil {
		log.Printf("[ERROR] timeline resolver: template %s: %v", templateID, err)
		return nil
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].TimelineItemOrderIndex < items[j].TimelineItemOrderIndex
	})

	rt := &ResolvedTimeline{Template: *tpl, Items: items, ClassID: effClass}

	if r.cache != nil {
		if raw, err := sonic.MarshalString(rt); err == nil {
			r.cache.Set(ctx, key, raw, r.ttl)
		}
	}
	return rt
}

func normalizeID(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return id
}
