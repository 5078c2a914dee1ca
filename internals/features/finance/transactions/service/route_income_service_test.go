package service

import (
	"testing"

	"github.com/AlphaJr1/AlumniFund/internals/constants"
	"github.com/AlphaJr1/AlumniFund/internals/features/finance/transactions/model"
)

func TestShouldRouteIncome(t *testing.T) {
	income := &model.Transaction{
		TransactionType:   constants.TransactionTypeIncome,
		TransactionAmount: 100000,
	}
	if !ShouldRouteIncome(income) {
		t.Fatal("income tanpa target_id harus dirutekan")
	}

	expense := &model.Transaction{
		TransactionType:   constants.TransactionTypeExpense,
		TransactionAmount: 100000,
	}
	if ShouldRouteIncome(expense) {
		t.Fatal("expense tidak boleh dirutekan")
	}

	preset := "general_fund"
	routed := &model.Transaction{
		TransactionType:     constants.TransactionTypeIncome,
		TransactionAmount:   100000,
		TransactionTargetID: &preset,
	}
	if ShouldRouteIncome(routed) {
		t.Fatal("transaksi yang sudah punya target_id harus no-op (idempoten)")
	}

	empty := ""
	blank := &model.Transaction{
		TransactionType:     constants.TransactionTypeIncome,
		TransactionTargetID: &empty,
	}
	if !ShouldRouteIncome(blank) {
		t.Fatal("target_id string kosong diperlakukan seperti belum dirutekan")
	}
}
