package impl_transfer

import (
	"regexp"
	"strings"

	domain_account "github.com/james-ap-sunny/interbank-transfers/internal/domain/account"
	domain_transfer "github.com/james-ap-sunny/interbank-transfers/internal/domain/transfer"
	port_transfer "github.com/james-ap-sunny/interbank-transfers/internal/ports/usecase/transfer"
)

var accountNoPattern = regexp.MustCompile(`^[0-9A-Za-z]+$`)

// Validate runs the structural checks: required fields, account number
// shape, distinct accounts, a positive 2-decimal amount inside the configured
// global bounds, and a supported currency. It never touches a store.
func (u *TransferUsecaseImpl) Validate(in port_transfer.ProcessTransferInput) error {
	if err := validateAccountNo("from_account", in.FromAccount); err != nil {
		return err
	}
	if err := validateAccountNo("to_account", in.ToAccount); err != nil {
		return err
	}

	if strings.TrimSpace(in.FromAccount) == strings.TrimSpace(in.ToAccount) {
		return domain_transfer.ErrSameAccount
	}

	if !in.Amount.IsPositive() || in.Amount.Exponent() < -2 {
		return domain_transfer.ErrInvalidAmount
	}

	if in.Amount.LessThan(u.cfg.MinTransferAmount) {
		return &domain_account.TransferLimitExceededError{
			LimitType:   "Minimum Transfer Amount",
			LimitAmount: u.cfg.MinTransferAmount,
			Requested:   in.Amount,
		}
	}
	if in.Amount.GreaterThan(u.cfg.MaxTransferAmount) {
		return &domain_account.TransferLimitExceededError{
			LimitType:   "Maximum Transfer Amount",
			LimitAmount: u.cfg.MaxTransferAmount,
			Requested:   in.Amount,
		}
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		return &ValidationError{Field: "currency", Message: "currency is required"}
	}
	for _, supported := range u.cfg.SupportedCurrencies {
		if currency == supported {
			return nil
		}
	}
	return &domain_transfer.UnsupportedCurrencyError{Currency: currency, Supported: u.cfg.SupportedCurrencies}
}

func validateAccountNo(field, accountNo string) error {
	accountNo = strings.TrimSpace(accountNo)
	if accountNo == "" {
		return &ValidationError{Field: field, Message: "account number is required"}
	}
	if len(accountNo) < 10 || len(accountNo) > 50 {
		return &ValidationError{Field: field, Message: "account number length must be between 10 and 50 characters"}
	}
	if !accountNoPattern.MatchString(accountNo) {
		return &ValidationError{Field: field, Message: "account number contains invalid characters"}
	}
	return nil
}
