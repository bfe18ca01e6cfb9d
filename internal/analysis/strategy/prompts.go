package strategy

import "fmt"

func analysisPrompt(text string, targetLangName string) string {
	return fmt.Sprintf(`Analyze the following legal document and provide a comprehensive analysis in %s.

Please provide:
1. Document type and purpose
2. Key parties involved (names, organizations)
3. Important dates and deadlines
4. Financial terms and amounts
5. Key legal clauses (termination, confidentiality, indemnity, payment, dispute resolution)
6. Potential risks and liabilities
7. Key obligations for each party
8. Jurisdiction and governing law
9. Document summary

Format the response as JSON with the following structure:
{
    "document_type": "string",
    "parties": ["list of parties"],
    "dates": ["list of important dates"],
    "financial_terms": ["list of amounts and terms"],
    "clauses": {
        "termination": ["termination clauses"],
        "confidentiality": ["confidentiality clauses"],
        "indemnity": ["indemnity clauses"],
        "payment": ["payment clauses"],
        "dispute_resolution": ["dispute resolution clauses"]
    },
    "risks": ["list of potential risks"],
    "obligations": ["list of key obligations"],
    "jurisdiction": "string",
    "summary": "comprehensive summary"
}

Legal Document Text:
%s

Analysis (JSON format):`, targetLangName, text)
}

func entityPrompt(text string, targetLangName string) string {
	return fmt.Sprintf(`Extract the following entities from the legal document text. Respond in %s:

1. PERSONS: Names of individuals
2. ORGANIZATIONS: Company names, institutions
3. DATES: All dates mentioned
4. MONEY: Financial amounts, currencies
5. LOCATIONS: Places, addresses, jurisdictions

Format as JSON:
{
    "PERSONS": ["list of person names"],
    "ORGANIZATIONS": ["list of organizations"],
    "DATES": ["list of dates"],
    "MONEY": ["list of monetary amounts"],
    "LOCATIONS": ["list of locations"]
}

Text: %s

Entities (JSON):`, targetLangName, text)
}

func translatePrompt(text string, sourceLangName string, targetLangName string) string {
	return fmt.Sprintf(`Translate the following legal document text from %s to %s.
Preserve legal terminology and maintain the formal tone. Ensure accuracy of legal concepts:

Text to translate: %s

Translation:`, sourceLangName, targetLangName, text)
}
