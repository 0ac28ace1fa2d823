package postgres

import (
	"context"
	"fmt"
)

// Session é a disciplina de conexão/transação do subsistema de importação.
// Carrega um contador explícito de profundidade: chamadas aninhadas a
// WithTransaction reaproveitam a transação aberta em vez de abrir uma
// transação ilegalmente aninhada, e somente a saída mais externa faz
// commit/rollback e libera a transação.
//
// Uma Session pertence a uma cadeia de chamadas; nunca compartilhe a mesma
// instância entre goroutines concorrentes.
type Session struct {
	conn  *Connection
	tx    txHandle
	depth int
}

// txHandle é o que a Session precisa de uma transação aberta. Existe como
// interface para os testes injetarem transações simuladas.
type txHandle interface {
	Queryer
	Commit() error
	Rollback() error
}

func NewSession(conn *Connection) *Session {
	return &Session{conn: conn}
}

// Queryer devolve a transação ambiente quando há uma aberta, senão o pool.
// Os repositórios roteiam toda query por aqui.
func (s *Session) Queryer() Queryer {
	if s.tx != nil {
		return s.tx
	}
	return s.conn.DB
}

// InTransaction informa se há uma transação ambiente aberta nesta Session.
func (s *Session) InTransaction() bool {
	return s.tx != nil
}

// WithTransaction executa fn dentro de uma transação. Commit no retorno normal,
// rollback em erro ou panic, e liberação garantida em todo caminho de saída.
// Entradas aninhadas reaproveitam a transação ambiente; o contador de
// profundidade é simétrico (toda entrada incrementa, toda saída decrementa).
func (s *Session) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.tx != nil {
		s.depth++
		defer func() { s.depth-- }()
		return fn(ctx)
	}

	tx, err := s.conn.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("erro ao abrir transação: %w", err)
	}

	s.tx = tx
	s.depth++

	defer func() {
		s.depth--
		if s.depth == 0 {
			s.tx = nil
		}
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("erro no rollback (%v) após falha: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}

// WithConnection é o irmão não transacional de WithTransaction, para trabalho
// somente leitura. Reaproveita a transação ambiente quando há uma ativa, para
// não abrir uma segunda conexão no meio de um lock de escrita já mantido.
func (s *Session) WithConnection(ctx context.Context, fn func(ctx context.Context) error) error {
	s.depth++
	defer func() { s.depth-- }()
	return fn(ctx)
}

// AdvisoryLock adquire um advisory lock transacional no Postgres. Liberado
// automaticamente no commit/rollback da transação ambiente.
func (s *Session) AdvisoryLock(ctx context.Context, key int64) error {
	if s.tx == nil {
		return fmt.Errorf("advisory lock exige transação ambiente aberta")
	}
	if _, err := s.tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", key); err != nil {
		return fmt.Errorf("erro ao adquirir advisory lock: %w", err)
	}
	return nil
}
