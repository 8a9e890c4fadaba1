package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado         = errors.New("recurso não encontrado")
	ErrEntradaInvalida       = errors.New("entrada inválida")
	ErrDuplicado             = errors.New("recurso duplicado")
	ErrNaoAutorizado         = errors.New("não autorizado")
	ErrAcessoNegado          = errors.New("acesso negado")
	ErrEstoqueInsuficiente   = errors.New("estoque insuficiente")
	ErrLimiteCreditoExcedido = errors.New("limite de crédito excedido")
	ErrPagamentoExcedeSaldo  = errors.New("o valor pago excede o saldo devedor")
	ErrSaldoPendente         = errors.New("cliente possui saldo devedor pendente")
	ErrPeriodoInvalido       = errors.New("período de datas inválido")
	ErrTransacaoAbortada     = errors.New("transação abortada por conflito ou timeout")
	ErrAssinaturaBloqueada   = errors.New("assinatura da mercearia bloqueada")
)
