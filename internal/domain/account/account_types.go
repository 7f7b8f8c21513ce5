package account

type AccountType string

const (
	TypeCash          AccountType = "Efectivo"
	TypeSavings       AccountType = "Ahorros"
	TypeDigitalWallet AccountType = "Billetera Digital"
	TypeCreditCard    AccountType = "Tarjeta de Crédito"
	TypeInvestment    AccountType = "Inversión"
)

func (t AccountType) IsValid() bool {
	switch t {
	case TypeCash, TypeSavings, TypeDigitalWallet, TypeCreditCard, TypeInvestment:
		return true
	}
	return false
}
