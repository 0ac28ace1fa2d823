// Package resolving mapeia o identificador de faturamento em texto livre
// ("Agência:Cliente" ou só o nome do cliente) para registros canônicos de
// cliente e agência, com fallback em apelidos mantidos por administradores.
package resolving

import (
	"context"
	"strings"

	"github.com/vfg2006/spot-manager/infrastructure/repository"
	"github.com/vfg2006/spot-manager/internal/domain"
	"github.com/vfg2006/spot-manager/pkg/log"
)

// Separator separa agência e cliente no identificador de faturamento. Somente
// a primeira ocorrência divide; separadores seguintes fazem parte do nome do
// cliente.
const Separator = ":"

// Resolution é o resultado da resolução. Slots não resolvidos ficam nil —
// falha de resolução é um desfecho esperado, nunca um erro: é preferível
// importar o spot com cliente desconhecido a descartar o registro de receita.
type Resolution struct {
	CustomerID    *int64
	AgencyID      *int64
	UsedAlias     bool
	HasAgencyPart bool
}

// Incomplete informa se algum slot esperado ficou sem resolução.
func (r *Resolution) Incomplete() bool {
	if r.CustomerID == nil {
		return true
	}
	return r.HasAgencyPart && r.AgencyID == nil
}

type Service interface {
	Resolve(ctx context.Context, billingText string) (*Resolution, error)
}

type service struct {
	entityRepo repository.EntityRepository
}

func NewService(entityRepo repository.EntityRepository) Service {
	return &service{entityRepo: entityRepo}
}

// Resolve aplica o algoritmo em ordem estrita, primeiro acerto vence por slot:
// busca exata (sensível a caixa, só ativos) e depois apelido, para cliente e
// para agência. Erros aqui são só falhas de armazenamento; não achar ninguém
// não é erro.
func (s *service) Resolve(ctx context.Context, billingText string) (*Resolution, error) {
	resolution := &Resolution{}

	text := strings.TrimSpace(billingText)
	if text == "" {
		return resolution, nil
	}

	customerPart := text
	agencyPart := ""
	if idx := strings.Index(text, Separator); idx >= 0 {
		agencyPart = strings.TrimSpace(text[:idx])
		customerPart = strings.TrimSpace(text[idx+1:])
		resolution.HasAgencyPart = true
	}

	customerID, usedAlias, err := s.resolveCustomer(ctx, customerPart)
	if err != nil {
		return nil, err
	}
	resolution.CustomerID = customerID
	resolution.UsedAlias = resolution.UsedAlias || usedAlias

	if resolution.HasAgencyPart {
		agencyID, usedAlias, err := s.resolveAgency(ctx, agencyPart)
		if err != nil {
			return nil, err
		}
		resolution.AgencyID = agencyID
		resolution.UsedAlias = resolution.UsedAlias || usedAlias
	}

	if resolution.Incomplete() {
		log.ForContext(ctx).WithField("billing_text", billingText).
			Debug("Identificador de faturamento sem resolução completa")
	}

	return resolution, nil
}

func (s *service) resolveCustomer(ctx context.Context, name string) (*int64, bool, error) {
	if name == "" {
		return nil, false, nil
	}

	customer, err := s.entityRepo.FindCustomerByName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if customer != nil {
		return &customer.ID, false, nil
	}

	// Apelido é estritamente fallback: nunca vence a busca exata.
	targetID, err := s.entityRepo.FindAliasTarget(ctx, domain.EntityKindCustomer, name)
	if err != nil {
		return nil, false, err
	}
	if targetID != nil {
		return targetID, true, nil
	}

	return nil, false, nil
}

func (s *service) resolveAgency(ctx context.Context, name string) (*int64, bool, error) {
	if name == "" {
		return nil, false, nil
	}

	agency, err := s.entityRepo.FindAgencyByName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if agency != nil {
		return &agency.ID, false, nil
	}

	targetID, err := s.entityRepo.FindAliasTarget(ctx, domain.EntityKindAgency, name)
	if err != nil {
		return nil, false, err
	}
	if targetID != nil {
		return targetID, true, nil
	}

	return nil, false, nil
}
