package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pbanos/pmmltree"
	"github.com/pbanos/pmmltree/feature"
	"github.com/pbanos/pmmltree/feature/yaml"
	"github.com/pbanos/pmmltree/tree"
	"github.com/pbanos/pmmltree/tree/json"
	"github.com/pbanos/pmmltree/tree/redisstore"
	"github.com/spf13/viper"
	"gopkg.in/redis.v5"
)

func (rcc *rootCmdConfig) validatePMML() error {
	if rcc.pmmlInput == "" {
		return fmt.Errorf("required pmml flag was not set")
	}
	return nil
}

func (rcc *rootCmdConfig) classifier() (*pmmltree.Classifier, error) {
	var declarations []feature.Declaration
	if rcc.metadataInput != "" {
		log.Debugf("Reading field declarations from metadata at %s...", rcc.metadataInput)
		var err error
		declarations, err = yaml.ReadFeaturesFromFile(rcc.metadataInput)
		if err != nil {
			return nil, err
		}
	}
	log.Debugf("Loading tree model from %s...", rcc.pmmlInput)
	c, err := pmmltree.LoadFile(rcc.pmmlInput, declarations...)
	if err != nil {
		return nil, fmt.Errorf("loading tree model from %s: %v", rcc.pmmlInput, err)
	}
	log.Debugf("Tree model loaded: %d nodes, max depth %d", c.Tree.NodeCount(), c.Tree.MaxDepth())
	return c, nil
}

func redisConfigured() bool {
	return viper.GetString("redis-addr") != ""
}

func redisStore() (tree.Store, error) {
	rc := redis.NewClient(&redis.Options{
		Addr:     viper.GetString("redis-addr"),
		Password: viper.GetString("redis-password"),
		DB:       viper.GetInt("redis-db"),
	})
	_, err := rc.Ping().Result()
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %v", viper.GetString("redis-addr"), err)
	}
	return redisstore.New(rc, viper.GetString("redis-prefix"), json.NewNodeEncodeDecoder()), nil
}

func loadJSONTree(ctx context.Context, filepath string) (*tree.Tree, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading tree in JSON from %s: %v", filepath, err)
	}
	defer f.Close()
	t, err := json.ReadJSONTree(ctx, json.NewNodeEncodeDecoder(), f)
	if err != nil {
		err = fmt.Errorf("parsing tree in JSON from %s: %v", filepath, err)
	}
	return t, err
}
