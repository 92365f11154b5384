package refdata

import "SentiPulse/internal/domain/models"

// NiftyUniverse returns the NIFTY 50 constituent set (October 2025
// weightages, October 28 2025 futures expiry).
func NiftyUniverse() *Universe {
	return &Universe{
		Index:   models.IndexNifty,
		Stocks:  niftyStocks,
		Futures: niftyFutures,
		Weights: niftyWeights,
	}
}

var niftyStocks = []Instrument{
	{Token: "11483", Symbol: "LT-EQ", Name: "LT", Company: "Larsen & Toubro Ltd", Weight: 3.84},
	{Token: "10604", Symbol: "BHARTIARTL-EQ", Name: "BHARTIARTL", Company: "Bharti Airtel Ltd", Weight: 4.53},
	{Token: "11630", Symbol: "NTPC-EQ", Name: "NTPC", Company: "NTPC Ltd", Weight: 1.42},
	{Token: "1333", Symbol: "HDFCBANK-EQ", Name: "HDFCBANK", Company: "HDFC Bank Ltd", Weight: 12.91},
	{Token: "1394", Symbol: "HINDUNILVR-EQ", Name: "HINDUNILVR", Company: "Hindustan Unilever Ltd", Weight: 1.98},
	{Token: "14977", Symbol: "POWERGRID-EQ", Name: "POWERGRID", Company: "Power Grid Corporation of India Ltd", Weight: 1.15},
	{Token: "2031", Symbol: "M&M-EQ", Name: "M&M", Company: "Mahindra & Mahindra Ltd", Weight: 2.69},
	{Token: "17963", Symbol: "NESTLEIND-EQ", Name: "NESTLEIND", Company: "Nestle India Ltd", Weight: 0.73},
	{Token: "20374", Symbol: "COALINDIA-EQ", Name: "COALINDIA", Company: "Coal India Ltd", Weight: 0.76},
	{Token: "16675", Symbol: "BAJAJFINSV-EQ", Name: "BAJAJFINSV", Company: "Bajaj Finserv Ltd", Weight: 1.0},
	{Token: "1964", Symbol: "TRENT-EQ", Name: "TRENT", Company: "Trent Ltd", Weight: 0.94},
	{Token: "21808", Symbol: "SBILIFE-EQ", Name: "SBILIFE", Company: "SBI Life Insurance Company Ltd", Weight: 0.7},
	{Token: "22377", Symbol: "MAXHEALTH-EQ", Name: "MAXHEALTH", Company: "Max Healthcare Institute Ltd", Weight: 0.7},
	{Token: "236", Symbol: "ASIANPAINT-EQ", Name: "ASIANPAINT", Company: "Asian Paints Ltd", Weight: 0.93},
	{Token: "2885", Symbol: "RELIANCE-EQ", Name: "RELIANCE", Company: "Reliance Industries Ltd", Weight: 8.08},
	{Token: "3499", Symbol: "TATASTEEL-EQ", Name: "TATASTEEL", Company: "Tata Steel Ltd", Weight: 1.25},
	{Token: "5900", Symbol: "AXISBANK-EQ", Name: "AXISBANK", Company: "Axis Bank Ltd", Weight: 2.96},
	{Token: "694", Symbol: "CIPLA-EQ", Name: "CIPLA", Company: "Cipla Ltd", Weight: 0.75},
	{Token: "383", Symbol: "BEL-EQ", Name: "BEL", Company: "Bharat Electronics Ltd", Weight: 1.29},
	{Token: "10999", Symbol: "MARUTI-EQ", Name: "MARUTI", Company: "Maruti Suzuki India Ltd", Weight: 1.82},
	{Token: "11195", Symbol: "INDIGO-EQ", Name: "INDIGO", Company: "InterGlobe Aviation Ltd", Weight: 1.08},
	{Token: "11723", Symbol: "JSWSTEEL-EQ", Name: "JSWSTEEL", Company: "JSW Steel Ltd", Weight: 0.95},
	{Token: "11532", Symbol: "ULTRACEMCO-EQ", Name: "ULTRACEMCO", Company: "UltraTech Cement Ltd", Weight: 1.25},
	{Token: "1232", Symbol: "GRASIM-EQ", Name: "GRASIM", Company: "Grasim Industries Ltd", Weight: 0.93},
	{Token: "13538", Symbol: "TECHM-EQ", Name: "TECHM", Company: "Tech Mahindra Ltd", Weight: 0.78},
	{Token: "11536", Symbol: "TCS-EQ", Name: "TCS", Company: "Tata Consultancy Services Ltd", Weight: 2.6},
	{Token: "1363", Symbol: "HINDALCO-EQ", Name: "HINDALCO", Company: "Hindalco Industries Ltd", Weight: 0.99},
	{Token: "157", Symbol: "APOLLOHOSP-EQ", Name: "APOLLOHOSP", Company: "Apollo Hospitals Enterprise Ltd", Weight: 0.66},
	{Token: "1660", Symbol: "ITC-EQ", Name: "ITC", Company: "ITC Ltd", Weight: 3.41},
	{Token: "18143", Symbol: "JIOFIN-EQ", Name: "JIOFIN", Company: "Jio Financial Services Ltd", Weight: 0.87},
	{Token: "15083", Symbol: "ADANIPORTS-EQ", Name: "ADANIPORTS", Company: "Adani Ports and Special Economic Zone Ltd", Weight: 0.92},
	{Token: "1922", Symbol: "KOTAKBANK-EQ", Name: "KOTAKBANK", Company: "Kotak Mahindra Bank Ltd", Weight: 2.71},
	{Token: "1594", Symbol: "INFY-EQ", Name: "INFY", Company: "Infosys Ltd", Weight: 4.56},
	{Token: "2475", Symbol: "ONGC-EQ", Name: "ONGC", Company: "Oil & Natural Gas Corporation Ltd", Weight: 0.83},
	{Token: "25", Symbol: "ADANIENT-EQ", Name: "ADANIENT", Company: "Adani Enterprises Ltd", Weight: 0.59},
	{Token: "3351", Symbol: "SUNPHARMA-EQ", Name: "SUNPHARMA", Company: "Sun Pharmaceutical Industries Ltd", Weight: 1.51},
	{Token: "7229", Symbol: "HCLTECH-EQ", Name: "HCLTECH", Company: "HCL Technologies Ltd", Weight: 1.29},
	{Token: "3787", Symbol: "WIPRO-EQ", Name: "WIPRO", Company: "Wipro Ltd", Weight: 0.6},
	{Token: "3045", Symbol: "SBIN-EQ", Name: "SBIN", Company: "State Bank of India", Weight: 3.16},
	{Token: "317", Symbol: "BAJFINANCE-EQ", Name: "BAJFINANCE", Company: "Bajaj Finance Ltd", Weight: 2.3},
	{Token: "3432", Symbol: "TATACONSUM-EQ", Name: "TATACONSUM", Company: "Tata Consumer Products Ltd", Weight: 0.65},
	{Token: "3456", Symbol: "TATAMOTORS-EQ", Name: "TATAMOTORS", Company: "Tata Motors Ltd", Weight: 1.31},
	{Token: "5097", Symbol: "ETERNAL-EQ", Name: "ETERNAL", Company: "Eternal Materials Co Ltd", Weight: 2.0},
	{Token: "910", Symbol: "EICHERMOT-EQ", Name: "EICHERMOT", Company: "Eicher Motors Ltd", Weight: 0.84},
	{Token: "881", Symbol: "DRREDDY-EQ", Name: "DRREDDY", Company: "Dr Reddys Laboratories Ltd", Weight: 0.67},
	{Token: "3506", Symbol: "TITAN-EQ", Name: "TITAN", Company: "Titan Company Ltd", Weight: 1.25},
	{Token: "4306", Symbol: "SHRIRAMFIN-EQ", Name: "SHRIRAMFIN", Company: "Shriram Finance Ltd", Weight: 0.79},
	{Token: "467", Symbol: "HDFCLIFE-EQ", Name: "HDFCLIFE", Company: "HDFC Life Insurance Co Ltd", Weight: 0.71},
}

var niftyFutures = []Instrument{
	{Token: "52274", Symbol: "BEL28OCT25FUT", Name: "BEL", Company: "Bharat Electronics Ltd", Weight: 1.29},
	{Token: "52351", Symbol: "GRASIM28OCT25FUT", Name: "GRASIM", Company: "Grasim Industries Ltd", Weight: 0.93},
	{Token: "52442", Symbol: "LT28OCT25FUT", Name: "LT", Company: "Larsen & Toubro Ltd", Weight: 3.84},
	{Token: "52454", Symbol: "MARUTI28OCT25FUT", Name: "MARUTI", Company: "Maruti Suzuki India Ltd", Weight: 1.82},
	{Token: "52555", Symbol: "TRENT28OCT25FUT", Name: "TRENT", Company: "Trent Ltd", Weight: 0.94},
	{Token: "52391", Symbol: "INDIGO28OCT25FUT", Name: "INDIGO", Company: "InterGlobe Aviation Ltd", Weight: 1.08},
	{Token: "52240", Symbol: "BAJAJFINSV28OCT25FUT", Name: "BAJAJFINSV", Company: "Bajaj Finserv Ltd", Weight: 1.0},
	{Token: "52455", Symbol: "MAXHEALTH28OCT25FUT", Name: "MAXHEALTH", Company: "Max Healthcare Institute Ltd", Weight: 0.7},
	{Token: "52509", Symbol: "RELIANCE28OCT25FUT", Name: "RELIANCE", Company: "Reliance Industries Ltd", Weight: 8.08},
	{Token: "52532", Symbol: "TATAMOTORS28OCT25FUT", Name: "TATAMOTORS", Company: "Tata Motors Ltd", Weight: 1.31},
	{Token: "52558", Symbol: "ULTRACEMCO28OCT25FUT", Name: "ULTRACEMCO", Company: "UltraTech Cement Ltd", Weight: 1.25},
	{Token: "52422", Symbol: "JSWSTEEL28OCT25FUT", Name: "JSWSTEEL", Company: "JSW Steel Ltd", Weight: 0.95},
	{Token: "52474", Symbol: "NTPC28OCT25FUT", Name: "NTPC", Company: "NTPC Ltd", Weight: 1.42},
	{Token: "52504", Symbol: "POWERGRID28OCT25FUT", Name: "POWERGRID", Company: "Power Grid Corporation of India Ltd", Weight: 1.15},
	{Token: "52521", Symbol: "SUNPHARMA28OCT25FUT", Name: "SUNPHARMA", Company: "Sun Pharmaceutical Industries Ltd", Weight: 1.51},
	{Token: "52539", Symbol: "TCS28OCT25FUT", Name: "TCS", Company: "Tata Consultancy Services Ltd", Weight: 2.6},
	{Token: "52370", Symbol: "HINDUNILVR28OCT25FUT", Name: "HINDUNILVR", Company: "Hindustan Unilever Ltd", Weight: 1.98},
	{Token: "52568", Symbol: "WIPRO28OCT25FUT", Name: "WIPRO", Company: "Wipro Ltd", Weight: 0.6},
	{Token: "52176", Symbol: "ADANIPORTS28OCT25FUT", Name: "ADANIPORTS", Company: "Adani Ports and Special Economic Zone Ltd", Weight: 0.92},
	{Token: "52223", Symbol: "AXISBANK28OCT25FUT", Name: "AXISBANK", Company: "Axis Bank Ltd", Weight: 2.96},
	{Token: "52446", Symbol: "M&M28OCT25FUT", Name: "M&M", Company: "Mahindra & Mahindra Ltd", Weight: 2.69},
	{Token: "52466", Symbol: "NESTLEIND28OCT25FUT", Name: "NESTLEIND", Company: "Nestle India Ltd", Weight: 0.73},
	{Token: "52542", Symbol: "TECHM28OCT25FUT", Name: "TECHM", Company: "Tech Mahindra Ltd", Weight: 0.78},
	{Token: "52545", Symbol: "TITAN28OCT25FUT", Name: "TITAN", Company: "Titan Company Ltd", Weight: 1.25},
	{Token: "52241", Symbol: "BAJFINANCE28OCT25FUT", Name: "BAJFINANCE", Company: "Bajaj Finance Ltd", Weight: 2.3},
	{Token: "52307", Symbol: "CIPLA28OCT25FUT", Name: "CIPLA", Company: "Cipla Ltd", Weight: 0.75},
	{Token: "52337", Symbol: "EICHERMOT28OCT25FUT", Name: "EICHERMOT", Company: "Eicher Motors Ltd", Weight: 0.84},
	{Token: "52365", Symbol: "HDFCLIFE28OCT25FUT", Name: "HDFCLIFE", Company: "HDFC Life Insurance Co Ltd", Weight: 0.71},
	{Token: "52368", Symbol: "HINDALCO28OCT25FUT", Name: "HINDALCO", Company: "Hindalco Industries Ltd", Weight: 0.99},
	{Token: "52398", Symbol: "INFY28OCT25FUT", Name: "INFY", Company: "Infosys Ltd", Weight: 4.56},
	{Token: "52513", Symbol: "SBILIFE28OCT25FUT", Name: "SBILIFE", Company: "SBI Life Insurance Company Ltd", Weight: 0.7},
	{Token: "52514", Symbol: "SBIN28OCT25FUT", Name: "SBIN", Company: "State Bank of India", Weight: 3.16},
	{Token: "52216", Symbol: "ASIANPAINT28OCT25FUT", Name: "ASIANPAINT", Company: "Asian Paints Ltd", Weight: 0.93},
	{Token: "52276", Symbol: "BHARTIARTL28OCT25FUT", Name: "BHARTIARTL", Company: "Bharti Airtel Ltd", Weight: 4.53},
	{Token: "52362", Symbol: "HCLTECH28OCT25FUT", Name: "HCLTECH", Company: "HCL Technologies Ltd", Weight: 1.29},
	{Token: "52418", Symbol: "JIOFIN28OCT25FUT", Name: "JIOFIN", Company: "Jio Financial Services Ltd", Weight: 0.87},
	{Token: "52489", Symbol: "ONGC28OCT25FUT", Name: "ONGC", Company: "Oil & Natural Gas Corporation Ltd", Weight: 0.83},
	{Token: "52527", Symbol: "TATACONSUM28OCT25FUT", Name: "TATACONSUM", Company: "Tata Consumer Products Ltd", Weight: 0.65},
	{Token: "52534", Symbol: "TATASTEEL28OCT25FUT", Name: "TATASTEEL", Company: "Tata Steel Ltd", Weight: 1.25},
	{Token: "52174", Symbol: "ADANIENT28OCT25FUT", Name: "ADANIENT", Company: "Adani Enterprises Ltd", Weight: 0.59},
	{Token: "52214", Symbol: "APOLLOHOSP28OCT25FUT", Name: "APOLLOHOSP", Company: "Apollo Hospitals Enterprise Ltd", Weight: 0.66},
	{Token: "52308", Symbol: "COALINDIA28OCT25FUT", Name: "COALINDIA", Company: "Coal India Ltd", Weight: 0.76},
	{Token: "52336", Symbol: "DRREDDY28OCT25FUT", Name: "DRREDDY", Company: "Dr Reddys Laboratories Ltd", Weight: 0.67},
	{Token: "52364", Symbol: "HDFCBANK28OCT25FUT", Name: "HDFCBANK", Company: "HDFC Bank Ltd", Weight: 12.91},
	{Token: "52414", Symbol: "ITC28OCT25FUT", Name: "ITC", Company: "ITC Ltd", Weight: 3.41},
	{Token: "52430", Symbol: "KOTAKBANK28OCT25FUT", Name: "KOTAKBANK", Company: "Kotak Mahindra Bank Ltd", Weight: 2.71},
	{Token: "52516", Symbol: "SHRIRAMFIN28OCT25FUT", Name: "SHRIRAMFIN", Company: "Shriram Finance Ltd", Weight: 0.79},
}

// niftyWeights is the aggregation weight table used for price action.
// It intentionally differs from the per-instrument weightages above and
// covers a slightly different constituent set.
var niftyWeights = map[string]float64{
	"RELIANCE":   9.5,
	"TCS":        7.2,
	"HDFCBANK":   7.5,
	"ICICIBANK":  7.0,
	"HINDUNILVR": 4.8,
	"INFY":       4.5,
	"LT":         3.8,
	"ITC":        3.5,
	"SBIN":       3.2,
	"BHARTIARTL": 3.0,
	"KOTAKBANK":  2.8,
	"ASIANPAINT": 2.5,
	"MARUTI":     2.4,
	"AXISBANK":   2.3,
	"HCLTECH":    2.2,
	"BAJFINANCE": 2.1,
	"WIPRO":      1.9,
	"NESTLEIND":  1.8,
	"ULTRACEMCO": 1.7,
	"TATAMOTORS": 1.6,
	"SUNPHARMA":  1.5,
	"NTPC":       1.4,
	"TITAN":      1.3,
	"POWERGRID":  1.2,
	"TECHM":      1.1,
	"M&M":        1.0,
	"ADANIPORTS": 0.9,
	"ONGC":       0.8,
	"COALINDIA":  0.7,
	"TATASTEEL":  0.6,
	"BAJAJFINSV": 0.5,
	"DRREDDY":    0.4,
	"HINDALCO":   0.3,
	"EICHERMOT":  0.2,
	"DIVISLAB":   0.1,
}
