package refdata

import "SentiPulse/internal/domain/models"

// BankNiftyUniverse returns the BANKNIFTY constituent set (October 2025
// weightages, October 28 2025 futures expiry).
func BankNiftyUniverse() *Universe {
	return &Universe{
		Index:   models.IndexBankNifty,
		Stocks:  bankStocks,
		Futures: bankFutures,
		Weights: bankWeights,
	}
}

var bankStocks = []Instrument{
	{Token: "10666", Symbol: "PNB-EQ", Name: "PNB", Company: "Punjab National Bank", Weight: 1.05},
	{Token: "10794", Symbol: "CANBK-EQ", Name: "CANBK", Company: "Canara Bank", Weight: 1.13},
	{Token: "1333", Symbol: "HDFCBANK-EQ", Name: "HDFCBANK", Company: "HDFC Bank Ltd", Weight: 39.1},
	{Token: "21238", Symbol: "AUBANK-EQ", Name: "AUBANK", Company: "AU Small Finance Bank Ltd", Weight: 1.11},
	{Token: "4963", Symbol: "ICICIBANK-EQ", Name: "ICICIBANK", Company: "ICICI Bank Ltd", Weight: 25.84},
	{Token: "4668", Symbol: "BANKBARODA-EQ", Name: "BANKBARODA", Company: "Bank of Baroda", Weight: 1.29},
	{Token: "5900", Symbol: "AXISBANK-EQ", Name: "AXISBANK", Company: "Axis Bank Ltd", Weight: 8.97},
	{Token: "5258", Symbol: "INDUSINDBK-EQ", Name: "INDUSINDBK", Company: "IndusInd Bank Ltd", Weight: 1.31},
	{Token: "1023", Symbol: "FEDERALBNK-EQ", Name: "FEDERALBNK", Company: "Federal Bank Ltd", Weight: 1.25},
	{Token: "11184", Symbol: "IDFCFIRSTB-EQ", Name: "IDFCFIRSTB", Company: "IDFC First Bank Ltd", Weight: 1.21},
	{Token: "1922", Symbol: "KOTAKBANK-EQ", Name: "KOTAKBANK", Company: "Kotak Mahindra Bank Ltd", Weight: 8.19},
	{Token: "3045", Symbol: "SBIN-EQ", Name: "SBIN", Company: "State Bank of India", Weight: 9.56},
}

var bankFutures = []Instrument{
	{Token: "52340", Symbol: "FEDERALBNK28OCT25FUT", Name: "FEDERALBNK", Company: "Federal Bank Ltd", Weight: 1.25},
	{Token: "52256", Symbol: "BANKBARODA28OCT25FUT", Name: "BANKBARODA", Company: "Bank of Baroda", Weight: 1.29},
	{Token: "52218", Symbol: "AUBANK28OCT25FUT", Name: "AUBANK", Company: "AU Small Finance Bank Ltd", Weight: 1.11},
	{Token: "52223", Symbol: "AXISBANK28OCT25FUT", Name: "AXISBANK", Company: "Axis Bank Ltd", Weight: 8.97},
	{Token: "52374", Symbol: "ICICIBANK28OCT25FUT", Name: "ICICIBANK", Company: "ICICI Bank Ltd", Weight: 25.84},
	{Token: "52380", Symbol: "IDFCFIRSTB28OCT25FUT", Name: "IDFCFIRSTB", Company: "IDFC First Bank Ltd", Weight: 1.21},
	{Token: "52394", Symbol: "INDUSINDBK28OCT25FUT", Name: "INDUSINDBK", Company: "IndusInd Bank Ltd", Weight: 1.31},
	{Token: "52514", Symbol: "SBIN28OCT25FUT", Name: "SBIN", Company: "State Bank of India", Weight: 9.56},
	{Token: "52303", Symbol: "CANBK28OCT25FUT", Name: "CANBK", Company: "Canara Bank", Weight: 1.13},
	{Token: "52500", Symbol: "PNB28OCT25FUT", Name: "PNB", Company: "Punjab National Bank", Weight: 1.05},
	{Token: "52364", Symbol: "HDFCBANK28OCT25FUT", Name: "HDFCBANK", Company: "HDFC Bank Ltd", Weight: 39.1},
	{Token: "52430", Symbol: "KOTAKBANK28OCT25FUT", Name: "KOTAKBANK", Company: "Kotak Mahindra Bank Ltd", Weight: 8.19},
}

var bankWeights = map[string]float64{
	"HDFCBANK":   23.5,
	"ICICIBANK":  22.8,
	"SBIN":       15.2,
	"KOTAKBANK":  12.4,
	"AXISBANK":   11.8,
	"INDUSINDBK": 4.2,
	"FEDERALBNK": 3.1,
	"BANDHANBNK": 2.8,
	"AUBANK":     2.2,
	"IDFCFIRSTB": 2.0,
}
