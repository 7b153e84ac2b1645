package staffing

import "github.com/salonops/salon-scheduler/internal/httperr"

// ===============================
// Compensation Models
// ===============================

type CommissionModel string

const (
	ModelPercentage      CommissionModel = "percentage"
	ModelSalaryPlus      CommissionModel = "salary_plus"
	ModelBoothRental     CommissionModel = "booth_rental"
	ModelFixedPerService CommissionModel = "fixed_per_service"
	ModelSalaryOnly      CommissionModel = "salary_only"
)

func ValidModel(m CommissionModel) bool {
	switch m {
	case ModelPercentage, ModelSalaryPlus, ModelBoothRental,
		ModelFixedPerService, ModelSalaryOnly:
		return true
	}
	return false
}

// PayoutParams are the raw numeric inputs as submitted.
type PayoutParams struct {
	CommissionPercentage *float64
	BaseSalary           *float64
	BoothRentalFee       *float64
}

// Payout is a normalized descriptor: exactly the fields active for the model
// are set, everything else is nil so stale values never survive a model
// change.
type Payout struct {
	Model                CommissionModel
	CommissionPercentage *float64
	BaseSalary           *float64
	BoothRentalFee       *float64
}

// NormalizePayout validates the parameters required by the model and clears
// the inactive ones. For fixed_per_service the salary field holds the
// per-service amount.
func NormalizePayout(model CommissionModel, params PayoutParams) (Payout, error) {
	if !ValidModel(model) {
		return Payout{}, httperr.ErrBusiness("invalid_commission_model")
	}

	out := Payout{Model: model}

	needPercentage := model == ModelPercentage || model == ModelSalaryPlus
	needSalary := model == ModelSalaryPlus || model == ModelFixedPerService || model == ModelSalaryOnly
	needBoothFee := model == ModelBoothRental

	if needPercentage {
		if params.CommissionPercentage == nil {
			return Payout{}, httperr.ErrBusiness("missing_commission_percentage")
		}
		if *params.CommissionPercentage < 0 || *params.CommissionPercentage > 100 {
			return Payout{}, httperr.ErrBusiness("invalid_commission_percentage")
		}
		out.CommissionPercentage = params.CommissionPercentage
	}

	if needSalary {
		if params.BaseSalary == nil {
			return Payout{}, httperr.ErrBusiness("missing_base_salary")
		}
		if *params.BaseSalary < 0 {
			return Payout{}, httperr.ErrBusiness("invalid_base_salary")
		}
		out.BaseSalary = params.BaseSalary
	}

	if needBoothFee {
		if params.BoothRentalFee == nil {
			return Payout{}, httperr.ErrBusiness("missing_booth_rental_fee")
		}
		if *params.BoothRentalFee < 0 {
			return Payout{}, httperr.ErrBusiness("invalid_booth_rental_fee")
		}
		out.BoothRentalFee = params.BoothRentalFee
	}

	return out, nil
}
