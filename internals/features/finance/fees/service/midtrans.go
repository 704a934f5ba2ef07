// file: internals/features/finance/fees/service/midtrans.go
package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	feeModel "kampusku_backend/internals/features/finance/fees/model"
)

var SnapClient snap.Client

// InitMidtrans wires the Snap client with the configured server key.
func InitMidtrans(serverKey string, production bool) {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// GenerateSnapToken creates a Snap payment token for one invoice.
func GenerateSnapToken(inv feeModel.FeeInvoiceModel, name, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  inv.OrderID,
			GrossAmt: inv.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
