package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/trafficops/ads-guardrail-api/infrastructure/database/postgres"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
)

const (
	rulesTable = "rules"

	ruleColumns = "r.id, r.name, r.enabled, r.platform, r.rule_type, r.params, r.created_at, r.updated_at"
)

var ErrRuleNotFound = fmt.Errorf("regra não encontrada")

type RuleRepository interface {
	Create(rule *domain.Rule) error
	GetByID(id string) (*domain.Rule, error)
	ListAll() ([]*domain.Rule, error)
	ListEnabled() ([]*domain.Rule, error)
	SetEnabled(id string, enabled bool) error
	UpdateParams(id string, params map[string]any) error
}

type ruleRepository struct {
	conn *postgres.Connection
}

func NewRuleRepository(conn *postgres.Connection) RuleRepository {
	return &ruleRepository{
		conn: conn,
	}
}

func (r *ruleRepository) Create(rule *domain.Rule) error {
	paramsJSON, err := json.Marshal(rule.Params)
	if err != nil {
		return fmt.Errorf("erro ao serializar params para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(rulesTable).
		Columns("id", "name", "enabled", "platform", "rule_type", "params").
		Values(
			rule.ID,
			rule.Name,
			rule.Enabled,
			rule.Platform,
			rule.RuleType,
			paramsJSON,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *ruleRepository) GetByID(id string) (*domain.Rule, error) {
	query, args, err := squirrel.
		Select(ruleColumns).
		From(rulesTable + " r").
		Where(squirrel.Eq{"r.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	rule, err := scanRule(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRuleNotFound
		}
		return nil, err
	}

	return rule, nil
}

func (r *ruleRepository) ListAll() ([]*domain.Rule, error) {
	return r.list(squirrel.
		Select(ruleColumns).
		From(rulesTable + " r").
		OrderBy("r.created_at"))
}

func (r *ruleRepository) ListEnabled() ([]*domain.Rule, error) {
	return r.list(squirrel.
		Select(ruleColumns).
		From(rulesTable + " r").
		Where(squirrel.Eq{"r.enabled": true}).
		OrderBy("r.created_at"))
}

func (r *ruleRepository) list(builder squirrel.SelectBuilder) ([]*domain.Rule, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rules := make([]*domain.Rule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rules, nil
}

func (r *ruleRepository) SetEnabled(id string, enabled bool) error {
	query, args, err := squirrel.
		Update(rulesTable).
		Set("enabled", enabled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

func (r *ruleRepository) UpdateParams(id string, params map[string]any) error {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("erro ao serializar params para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update(rulesTable).
		Set("params", paramsJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

func scanRule(row rowScanner) (*domain.Rule, error) {
	rule := &domain.Rule{}
	var paramsJSON []byte

	err := row.Scan(
		&rule.ID,
		&rule.Name,
		&rule.Enabled,
		&rule.Platform,
		&rule.RuleType,
		&paramsJSON,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("erro ao escanear rules: %w", err)
	}

	if paramsJSON != nil {
		if err := json.Unmarshal(paramsJSON, &rule.Params); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de params: %w", err)
		}
	}

	return rule, nil
}
